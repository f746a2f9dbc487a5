package constants

import "time"

const (
	// EngineVersion 抽取引擎的版本标签，随记录一起落库，
	// 词表或启发式规则变更时递增
	EngineVersion = "1.0"

	// RawTextMD5SetKey 已上传简历文本MD5集合的Redis键，用于上传去重
	RawTextMD5SetKey = "resumes:text_md5s"
	// RawTextMD5SetTTL MD5集合的过期时间
	RawTextMD5SetTTL = 30 * 24 * time.Hour

	// SearchCachePrefix 检索结果缓存键前缀，后接查询串的MD5
	SearchCachePrefix = "search:query:"
	// SearchCacheDuration 检索缓存时长，候选人集合变化不频繁，短缓存即可
	SearchCacheDuration = 5 * time.Minute
)
