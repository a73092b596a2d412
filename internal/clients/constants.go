package clients

import "time"

const (
	API_BASE_PATH   = "/api"
	DEFAULT_TIMEOUT = 60 * time.Second
	USER_AGENT      = "sentimentscope-client/1.0 (+https://github.com/spacesedan/sentimentscope)"
)
