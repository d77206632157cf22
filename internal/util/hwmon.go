package util

import (
	"os"
	"strings"
)

// GetDeviceName reads the name attribute of the given device path, if any.
func GetDeviceName(devicePath string) string {
	namePath := devicePath + "/name"
	content, _ := os.ReadFile(namePath)
	name := string(content)
	return strings.TrimSpace(name)
}

// GetDeviceModalias reads the modalias of the given device path, if any.
func GetDeviceModalias(devicePath string) string {
	modaliasPath := devicePath + "/device/modalias"
	content, _ := os.ReadFile(modaliasPath)
	return strings.TrimSpace(string(content))
}

// GetDeviceType reads the device type of the given device path, if any.
func GetDeviceType(devicePath string) string {
	typePath := devicePath + "/device/type"
	content, _ := os.ReadFile(typePath)
	return strings.TrimSpace(string(content))
}
