package bookmarks

func newPlatformTokenStore() TokenStore {
	return &DefaultsStore{}
}
