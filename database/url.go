package database

import (
	"fmt"
	"os"
	"strings"
)

// ConstructDatabaseURL joins a server URL and a database name.
// Query parameters on the base URL are preserved and sslmode=disable is added when no sslmode is given.
func ConstructDatabaseURL(baseURL, databaseName string) string {
	if databaseName == "" {
		return baseURL
	}

	baseURL = strings.TrimRight(baseURL, "/")
	databaseURL := fmt.Sprintf("%s/%s", baseURL, databaseName)
	if base, query, found := strings.Cut(baseURL, "?"); found {
		databaseURL = fmt.Sprintf("%s/%s?%s", strings.TrimRight(base, "/"), databaseName, query)
	}

	if !strings.Contains(databaseURL, "sslmode=") {
		separator := "&"
		if !strings.Contains(databaseURL, "?") {
			separator = "?"
		}
		databaseURL = fmt.Sprintf("%s%ssslmode=disable", databaseURL, separator)
	}

	return databaseURL
}

// URLFromEnv builds the database URL straight from the environment.
// Migrations use it so they do not require DISCORD_TOKEN.
func URLFromEnv() string {
	return ConstructDatabaseURL(os.Getenv("DATABASE_URL"), os.Getenv("DATABASE_NAME"))
}
