// File: internal/api/cache_info_response.go
package api

// CacheInfoResponse 回報 Open Library 搜尋快取統計
// Redis 快取無固定容量上限，maxsize 回傳 null
// swagger:model api.CacheInfoResponse
type CacheInfoResponse struct {
	Hits     int64  `json:"hits" example:"12"`
	Misses   int64  `json:"misses" example:"4"`
	MaxSize  *int64 `json:"maxsize"`
	CurrSize int64  `json:"currsize" example:"4"`
}

// DetailResponse 簡單訊息回應
// swagger:model api.DetailResponse
type DetailResponse struct {
	Detail string `json:"detail" example:"Cache cleared."`
}
