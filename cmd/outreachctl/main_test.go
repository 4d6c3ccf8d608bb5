package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupCLI(t *testing.T) *bytes.Buffer {
	t.Helper()
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("WHATSAPP_TOKEN", "")
	t.Setenv("WHATSAPP_PHONE_ID", "")
	t.Setenv("WHATSAPP_SIMULATED_LATENCY", "1ms")
	t.Setenv("PACING_MIN", "1ms")
	t.Setenv("PACING_MAX", "1ms")
	t.Setenv("NATS_URL", "")
	t.Setenv("REDIS_ADDR", "")

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	return out
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"run", "status", "import", "scan-contact", "dedupe", "serve"}
	got := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		got[c.Name()] = true
	}
	for _, name := range want {
		if !got[name] {
			t.Errorf("%s command not registered", name)
		}
	}
}

func TestImportCmd(t *testing.T) {
	out := setupCLI(t)

	csvPath := filepath.Join(t.TempDir(), "leads.csv")
	content := "nama_sppg,alamat,provinsi,kab_kota,kecamatan,desa\n" +
		"SPPG Cimahi 1,Jl. Baros,Jawa Barat,Kota Cimahi,Cimahi Tengah,Baros\n" +
		"SPPG Garut 2,Jl. Ciledug,Jawa Barat,Kab. Garut,Garut Kota,Ciledug\n" +
		"sppg cimahi 1,Jl. Baros,Jawa Barat,kota cimahi,Cimahi Tengah,Baros\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"import", "--file", csvPath})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.Contains(out.String(), `"newLeadsCount": 2`) || !strings.Contains(out.String(), `"skippedCount": 1`) {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestRunCmd_Simulation(t *testing.T) {
	out := setupCLI(t)

	rootCmd.SetArgs([]string{"run"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("run failed: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), `"success": true`) {
		t.Fatalf("unexpected output: %s", out.String())
	}
}

func TestDedupeCmd_Empty(t *testing.T) {
	out := setupCLI(t)

	rootCmd.SetArgs([]string{"dedupe"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("dedupe failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != "no duplicate leads" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestScanContactCmd_RequiresID(t *testing.T) {
	setupCLI(t)

	rootCmd.SetArgs([]string{"scan-contact"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an argument error")
	}
}
