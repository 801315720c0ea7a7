package cmd

import (
	"testing"

	"github.com/tasklight/tasklight/types"
)

func TestValidateAppConfig(t *testing.T) {
	valid := types.AppConfig{
		Project: types.ProjectConfig{RootDir: ".tasklight", TasksDir: "tasks"},
		Data:    types.DataConfig{File: "tasks.json", Format: "json"},
		Log:     types.LogConfig{File: "activity.log"},
	}
	if err := validateAppConfig(&valid); err != nil {
		t.Errorf("valid config should pass validation: %v", err)
	}

	badFormat := valid
	badFormat.Data.Format = "xml"
	if err := validateAppConfig(&badFormat); err == nil {
		t.Error("unsupported data format should fail validation")
	}

	missingFile := valid
	missingFile.Data.File = ""
	if err := validateAppConfig(&missingFile); err == nil {
		t.Error("missing data file should fail validation")
	}
}
