package model

import "time"

type Config struct {
	Backend     string
	SQLitePath  string
	PostgresURI string
	MongoURI    string
	MongoDB     string
	UserAgent   string
	HTTPTimeout time.Duration
}
