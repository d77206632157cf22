package hwmon

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/markusressel/amdfan2go/internal/util"
	"github.com/md14454/gosensors"
)

const (
	BusTypeIsa  = 1
	BusTypePci  = 2
	BusTypeAcpi = 5
)

// HwMonChip describes one hwmon chip as reported by libsensors,
// together with the attribute files relevant for fan control.
type HwMonChip struct {
	Name     string
	DType    string
	Modalias string
	Platform string
	Path     string

	Sensors []TempSensorEntry
	Pwms    []PwmOutputEntry
}

// TempSensorEntry is a temperature input of a chip.
type TempSensorEntry struct {
	Label string
	Index int
	Input string
}

// GetValue reads the current raw temperature of this input.
func (e TempSensorEntry) GetValue() (Temperature, error) {
	raw, err := readValue(e.Input)
	return Temperature(raw), err
}

// PwmOutputEntry is a pwm control output of a chip.
type PwmOutputEntry struct {
	Label  string
	Index  int
	Output string
}

// GetValue reads the currently applied raw pwm value of this output.
func (e PwmOutputEntry) GetValue() (Pwm, error) {
	raw, err := readValue(e.Output)
	return Pwm(raw), err
}

// GetChips enumerates all hwmon chips known to libsensors.
func GetChips() []*HwMonChip {
	gosensors.Init()
	defer gosensors.Cleanup()
	chips := gosensors.GetDetectedChips()

	var list []*HwMonChip

	for i := 0; i < len(chips); i++ {
		chip := chips[i]

		var identifier = computeIdentifier(chip)
		dType := util.GetDeviceType(chip.Path)
		modalias := util.GetDeviceModalias(chip.Path)
		platform := findPlatform(chip.Path)
		if len(platform) <= 0 {
			platform = identifier
		}

		sensorList := getTempSensors(chip)
		pwmList := getPwmOutputs(chip.Path)

		if len(sensorList) <= 0 && len(pwmList) <= 0 {
			continue
		}

		c := &HwMonChip{
			Name:     identifier,
			DType:    dType,
			Modalias: modalias,
			Platform: platform,
			Path:     chip.Path,
			Sensors:  sensorList,
			Pwms:     pwmList,
		}
		list = append(list, c)
	}

	return list
}

func getTempSensors(chip gosensors.Chip) []TempSensorEntry {
	var sensorList []TempSensorEntry

	features := chip.GetFeatures()
	for j := 0; j < len(features); j++ {
		feature := features[j]

		if feature.Type != gosensors.FeatureTypeTemp {
			continue
		}

		subfeatures := feature.GetSubFeatures()
		if !containsSubFeature(subfeatures, gosensors.SubFeatureTypeTempInput) {
			continue
		}

		inputSubFeature := getSubFeature(subfeatures, gosensors.SubFeatureTypeTempInput)
		sensorInputPath := fmt.Sprintf("%s/%s", chip.Path, inputSubFeature.Name)
		label := getLabel(chip.Path, inputSubFeature.Name)

		sensorList = append(sensorList, TempSensorEntry{
			Label: label,
			Index: len(sensorList) + 1,
			Input: sensorInputPath,
		})
	}

	return sensorList
}

// getPwmOutputs scans the chip directory for pwmN control files.
// libsensors does not expose pwm outputs as features, so the sysfs
// directory is walked directly.
func getPwmOutputs(chipPath string) []PwmOutputEntry {
	var pwmList []PwmOutputEntry

	matches, _ := filepath.Glob(filepath.Join(chipPath, "pwm[0-9]*"))
	sort.Strings(matches)
	for _, path := range matches {
		base := filepath.Base(path)
		if strings.ContainsRune(base, '_') {
			// pwmN_enable, pwmN_min and friends are attributes of pwmN
			continue
		}
		pwmList = append(pwmList, PwmOutputEntry{
			Label:  base,
			Index:  len(pwmList) + 1,
			Output: path,
		})
	}

	return pwmList
}

func getSubFeature(subfeatures []gosensors.SubFeature, input gosensors.SubFeatureType) gosensors.SubFeature {
	for _, a := range subfeatures {
		if a.Type == input {
			return a
		}
	}
	panic(fmt.Sprintf("No such element: %v", input))
}

func containsSubFeature(s []gosensors.SubFeature, e gosensors.SubFeatureType) bool {
	for _, a := range s {
		if a.Type == e {
			return true
		}
	}
	return false
}

// getLabel reads the label of an in/output of a device
func getLabel(devicePath string, input string) string {
	labelPath := strings.TrimSuffix(devicePath+"/"+input, "input") + "label"

	content, _ := os.ReadFile(labelPath)
	label := string(content)
	if len(label) <= 0 {
		_, label = filepath.Split(devicePath)
	}
	return strings.TrimSpace(label)
}

func computeIdentifier(chip gosensors.Chip) (name string) {
	name = chip.Prefix

	devicePath := chip.Path
	if len(name) <= 0 {
		name = util.GetDeviceName(devicePath)
	}

	if len(name) <= 0 {
		_, name = filepath.Split(devicePath)
	}

	identifier := name
	switch chip.Bus.Type {
	case BusTypeIsa:
		identifier = fmt.Sprintf("%s-isa-%d%03x", identifier, chip.Bus.Nr, chip.Addr)
	case BusTypePci:
		identifier = fmt.Sprintf("%s-pci-%d%03x", identifier, chip.Bus.Nr, chip.Addr)
	case BusTypeAcpi:
		identifier = fmt.Sprintf("%s-acpi-%d", identifier, chip.Bus.Nr)
	}

	return identifier
}

func findPlatform(devicePath string) string {
	platformRegex := regexp.MustCompile("/platform/([^/]+)/")
	match := platformRegex.FindStringSubmatch(devicePath)
	if match == nil {
		return ""
	}
	return match[1]
}
