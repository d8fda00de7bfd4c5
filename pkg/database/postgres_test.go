package database

import (
	"testing"

	"vertex-leisure/pkg/utils"
)

func TestConnString(t *testing.T) {
	config := utils.DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		User:     "leisure",
		Password: "secret",
		Name:     "leisure",
	}

	want := "user=leisure password=secret dbname=leisure sslmode=disable host=db.internal port=5432"
	if got := ConnString(config); got != want {
		t.Errorf("ConnString = %q, want %q", got, want)
	}
}
