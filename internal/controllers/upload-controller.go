package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/services"
	"gearguard/pkg/config"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/filestorage"
	"gearguard/pkg/utils"
)

type UploadController struct {
	fileStorage filestorage.FileStorageInterface
	userService services.UserServiceInterface
	cfg         config.UploadConfig
	logger      *zap.Logger
}

func NewUploadController(
	fileStorage filestorage.FileStorageInterface,
	userService services.UserServiceInterface,
	cfg config.UploadConfig,
	logger *zap.Logger,
) *UploadController {
	return &UploadController{
		fileStorage: fileStorage,
		userService: userService,
		cfg:         cfg,
		logger:      logger,
	}
}

// UploadEquipmentImage stores an image under the equipment's folder and
// returns its relative path.
func (c *UploadController) UploadEquipmentImage(ctx echo.Context) error {
	fileHeader, src, err := c.openUpload(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer src.Close()

	path := filestorage.EquipmentImagePath(ctx.Param("id"), fileHeader.Filename)
	saved, err := c.fileStorage.Save(src, path)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]string{"path": saved}, "Image uploaded", http.StatusCreated)
}

// UploadAvatar stores the user's avatar at a fixed path, replacing any
// previous one, and points the user record at it.
func (c *UploadController) UploadAvatar(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	fileHeader, src, err := c.openUpload(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer src.Close()

	path := filestorage.AvatarPath(ctx.Param("id"), fileHeader.Filename)
	saved, err := c.fileStorage.Save(src, path)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.userService.SetAvatar(reqCtx, ctx.Param("id"), saved)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "Avatar uploaded", http.StatusCreated)
}

// UploadRequestAttachment stores an attachment; the original file name is
// kept in the stored path.
func (c *UploadController) UploadRequestAttachment(ctx echo.Context) error {
	fileHeader, src, err := c.openUpload(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer src.Close()

	path := filestorage.RequestAttachmentPath(ctx.Param("id"), fileHeader.Filename)
	saved, err := c.fileStorage.Save(src, path)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, map[string]string{"path": saved}, "Attachment uploaded", http.StatusCreated)
}

// ListRequestAttachments returns the stored paths for one request.
func (c *UploadController) ListRequestAttachments(ctx echo.Context) error {
	paths, err := c.fileStorage.List("requests/" + ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if paths == nil {
		paths = []string{}
	}
	return utils.SuccessResponse(ctx, paths, "Attachments listed", http.StatusOK)
}

func (c *UploadController) openUpload(ctx echo.Context) (*multipart.FileHeader, multipart.File, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, nil, apperrors.NewHttpError(http.StatusBadRequest, "No file provided", err, nil)
	}

	if fileHeader.Size > c.cfg.MaxSizeMB*1024*1024 {
		return nil, nil, apperrors.NewHttpError(http.StatusBadRequest, "File too large", apperrors.ErrBadRequest,
			map[string]interface{}{"maxSizeMB": c.cfg.MaxSizeMB})
	}
	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if !c.mimeAllowed(contentType) {
		return nil, nil, apperrors.NewHttpError(http.StatusBadRequest, "File type not allowed", apperrors.ErrBadRequest,
			map[string]interface{}{"contentType": contentType})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, apperrors.NewHttpError(http.StatusInternalServerError, "Could not read file", err, nil)
	}
	return fileHeader, src, nil
}

func (c *UploadController) mimeAllowed(contentType string) bool {
	for _, allowed := range c.cfg.AllowedMimeTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
