// Package ytclient constructs ready-to-use YouTube Data API clients from a
// youtube.Config. It exists so that the youtube package can stay free of
// implementation dependencies while offering a one-line constructor:
//
//	client, err := ytclient.New(&youtube.Config{APIKey: os.Getenv("YTAPI_KEY")})
package ytclient
