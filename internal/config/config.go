package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// ADP
	ADPBaseURL      string
	ADPTokenURL     string
	ADPClientID     string
	ADPClientSecret string
	ADPCertFile     string
	ADPKeyFile      string

	// TalentLMS
	TalentLMSDomain string
	TalentLMSAPIKey string

	// SFTP (exportworkers drop)
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool

	HTTPTimeout time.Duration
}

func Load() Config {
	return Config{
		// ADP
		ADPBaseURL:      getenv("ADP_BASE_URL", "https://api.adp.com"),
		ADPTokenURL:     getenv("ADP_TOKEN_URL", "https://accounts.adp.com/auth/oauth/v2/token"),
		ADPClientID:     os.Getenv("ADP_CLIENT_ID"),
		ADPClientSecret: os.Getenv("ADP_CLIENT_SECRET"),
		ADPCertFile:     os.Getenv("ADP_CERT_FILE"),
		ADPKeyFile:      os.Getenv("ADP_KEY_FILE"),

		// TalentLMS
		TalentLMSDomain: os.Getenv("TALENTLMS_DOMAIN"),
		TalentLMSAPIKey: os.Getenv("TALENTLMS_API_KEY"),

		// SFTP
		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOST_KEY", false),

		HTTPTimeout: time.Duration(getenvInt("HTTP_TIMEOUT_SECONDS", 120)) * time.Second,
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
