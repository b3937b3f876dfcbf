package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 0},
		Database: DatabaseConfig{URI: "mongodb://localhost:27017"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseURI(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 3001},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database uri")
	}
}

func TestValidate_BadURIScheme(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 3001},
		Database: DatabaseConfig{URI: "postgres://localhost:5432"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for non-mongodb uri scheme")
	}
}

func TestValidate_SRVScheme(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 3001},
		Database: DatabaseConfig{URI: "mongodb+srv://cluster0.example.mongodb.net"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for srv uri: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected read timeout default 10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Database.Name != "sample_mflix" {
		t.Errorf("expected default database name sample_mflix, got %q", cfg.Database.Name)
	}
	if cfg.Embedding.Model != "voyage-3-large" {
		t.Errorf("expected default embedding model voyage-3-large, got %q", cfg.Embedding.Model)
	}
	if cfg.Embedding.Dimensions != 2048 {
		t.Errorf("expected default embedding dimensions 2048, got %d", cfg.Embedding.Dimensions)
	}
	if len(cfg.CORS.Origins) == 0 {
		t.Error("expected default CORS origins")
	}
}

func TestEmbeddingConfigured(t *testing.T) {
	cfg := Config{}
	if cfg.EmbeddingConfigured() {
		t.Error("empty api key should not count as configured")
	}

	cfg.Embedding.APIKey = "   "
	if cfg.EmbeddingConfigured() {
		t.Error("whitespace api key should not count as configured")
	}

	cfg.Embedding.APIKey = "pa-test-key"
	if !cfg.EmbeddingConfigured() {
		t.Error("expected configured embedding")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("CINEDEX_TEST_URI", "mongodb://db:27017")

	out := string(expandEnvVars([]byte("uri: ${CINEDEX_TEST_URI}\nname: ${CINEDEX_TEST_NAME:-sample_mflix}")))
	want := "uri: mongodb://db:27017\nname: sample_mflix"
	if out != want {
		t.Errorf("unexpected expansion:\ngot:  %q\nwant: %q", out, want)
	}
}
