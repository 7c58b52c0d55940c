package clients

const (
	HEALTH_PATH  = "/health"
	PREDICT_PATH = "/predict"
	EXPLAIN_PATH = "/explain"
	USER_AGENT   = "sentiview-dashboard/1.0 (+https://github.com/spacesedan/sentiview)"
)
