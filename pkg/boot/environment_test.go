package boot_test

import (
	"testing"

	"gitlab.com/pala-software/ignition/pkg/boot"
)

func TestEnvironmentFromEnv(t *testing.T) {
	t.Setenv("IGNITION_ENVIRONMENT", "development")
	t.Setenv("IGNITION_DB", "dbname=ignition_test")
	t.Setenv("UNRELATED", "value")

	env, err := boot.EnvironmentFromEnv("IGNITION_")
	if err != nil {
		t.Fatal(err)
	}

	if env.Name != boot.Development {
		t.Fatalf("expected development, got %s", env.Name)
	}

	if env.Get("DB") != "dbname=ignition_test" {
		t.Fatalf("unexpected DB value '%s'", env.Get("DB"))
	}

	if _, ok := env.Lookup("UNRELATED"); ok {
		t.Fatal("expected unprefixed variable to be excluded")
	}
}

func TestEnvironmentFromEnvRejectsInvalidName(t *testing.T) {
	t.Setenv("IGNITION_ENVIRONMENT", "staging")

	_, err := boot.EnvironmentFromEnv("IGNITION_")
	if err == nil {
		t.Fatal("expected error for invalid environment name")
	}
}

func TestEnvironmentRequire(t *testing.T) {
	t.Setenv("IGNITION_ENVIRONMENT", "production")
	t.Setenv("IGNITION_DB", "dbname=ignition")

	env, err := boot.EnvironmentFromEnv("IGNITION_")
	if err != nil {
		t.Fatal(err)
	}

	value, err := env.Require("DB")
	if err != nil {
		t.Fatal(err)
	}
	if value != "dbname=ignition" {
		t.Fatalf("unexpected value '%s'", value)
	}

	_, err = env.Require("MISSING")
	if err == nil {
		t.Fatal("expected error for unset variable")
	}
}

func TestEnvironmentNameIsValid(t *testing.T) {
	valid := []boot.EnvironmentName{boot.Development, boot.Production}
	for _, name := range valid {
		if !name.IsValid() {
			t.Fatalf("expected %s to be valid", name)
		}
	}

	if boot.EnvironmentName("staging").IsValid() {
		t.Fatal("expected staging to be invalid")
	}
	if boot.EnvironmentName("").IsValid() {
		t.Fatal("expected empty name to be invalid")
	}
}
