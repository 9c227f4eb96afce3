package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/WoolCost/internal/model"
)

func TestExportAndImportAllData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "woolcost-backup.json")

	config := model.DefaultAppConfig()
	config.RecentScenarios = []string{"/tmp/x.json"}
	scenario := model.NewScenario("Plant A")

	if err := ExportAllData(path, config, []model.Scenario{scenario}); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	backup, err := ImportAllData(path)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if backup.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %s", backup.Version)
	}
	if backup.CreatedAt == "" {
		t.Error("expected a creation timestamp")
	}
	if len(backup.Scenarios) != 1 || backup.Scenarios[0].Name != "Plant A" {
		t.Errorf("scenario did not survive the round trip: %+v", backup.Scenarios)
	}
	if len(backup.Config.RecentScenarios) != 1 {
		t.Errorf("config did not survive the round trip: %+v", backup.Config)
	}
}

func TestImportAllDataRejectsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte(`{"config":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Fatal("expected error for backup without version")
	}
}

func TestImportAllDataMissingFile(t *testing.T) {
	if _, err := ImportAllData(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
