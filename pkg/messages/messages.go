package messages

const (
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	ChampionNotFound    = "couldn't find a champion with the slug %s"
	FailedToParseMsg    = "failed to parse API response"
	FiltersNotNil       = "filters can't be nil"
	InvalidSlotSpeed    = "slot %q has a non positive speed %d"
	RequestFailedMsg    = "API request failed on URL %s"
	SourceFetchFailed   = "couldn't fetch the %s champion list"
	SnapshotWriteFailed = "couldn't write the %s snapshot"
)
