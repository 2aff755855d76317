package ws

import "github.com/roushou/polyte/clob/types"

// marketSubscription is the subscribe frame for the market channel.
type marketSubscription struct {
	AssetIDs []string `json:"assets_ids"`
	Type     string   `json:"type"`
}

// wsAuth carries L2 credentials inside a user subscribe frame. Field names
// are the wire's, not the REST API's.
type wsAuth struct {
	APIKey     string `json:"apiKey"`
	Secret     string `json:"secret"`
	Passphrase string `json:"passphrase"`
}

// String redacts the credentials.
func (a wsAuth) String() string {
	return "wsAuth{apiKey:<redacted> secret:<redacted> passphrase:<redacted>}"
}

// GoString redacts %#v output as well.
func (a wsAuth) GoString() string {
	return a.String()
}

// userSubscription is the subscribe frame for the user channel. Markets are
// condition IDs.
type userSubscription struct {
	Markets []string `json:"markets"`
	Auth    wsAuth   `json:"auth"`
	Type    string   `json:"type"`
}

func newMarketSubscription(assetIDs []string) marketSubscription {
	return marketSubscription{AssetIDs: assetIDs, Type: channelMarket}
}

func newUserSubscription(markets []string, creds *types.ApiKeyCreds) userSubscription {
	return userSubscription{
		Markets: markets,
		Auth: wsAuth{
			APIKey:     creds.Key,
			Secret:     creds.Secret,
			Passphrase: creds.Passphrase,
		},
		Type: channelUser,
	}
}
