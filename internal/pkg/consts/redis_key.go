package consts

const (
	TokenBlacklistKey   = "auth:blacklist:"
	DiscoverTopicsKey   = "topics:discover"
	DiscoverTopicsMiss  = "topics:discover:miss"
	VideoTopicsKey      = "topics:video:"
	SnapshotVersionKey  = "snapshot:version"
	SnapshotKeyTemplate = "snapshot:"
	MediaTempKey        = "media:temp"
)

const (
	TopicRefreshLock = "lock:topics:refresh"
	MediaCleanupLock = "lock:media:cleanup"
)
