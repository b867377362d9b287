package filestorage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Path builders matching the storage layout the frontend expects.

func EquipmentImagePath(equipmentID, fileName string) string {
	return fmt.Sprintf("equipment/%s/%d%s", equipmentID, time.Now().UnixMilli(), extOf(fileName))
}

func AvatarPath(userID, fileName string) string {
	return fmt.Sprintf("avatars/%s%s", userID, extOf(fileName))
}

func RequestAttachmentPath(requestID, fileName string) string {
	return fmt.Sprintf("requests/%s/%d_%s", requestID, time.Now().UnixMilli(), filepath.Base(fileName))
}

func extOf(fileName string) string {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext)
}
