package domain

// Platform identifica a plataforma de anúncios de uma campanha. O conjunto
// conhecido abaixo cobre os valores usuais, mas valores desconhecidos são
// aceitos e preservados como estão: o agrupamento por plataforma é sempre
// pela string exata.
type Platform string

const (
	PlatformGoogle   Platform = "Google Ads"
	PlatformMeta     Platform = "Meta Ads"
	PlatformLinkedIn Platform = "LinkedIn Ads"
	PlatformTikTok   Platform = "TikTok Ads"
	PlatformReddit   Platform = "Reddit Ads"
	PlatformSpotify  Platform = "Spotify Ads"
)

var knownPlatforms = map[Platform]struct{}{
	PlatformGoogle:   {},
	PlatformMeta:     {},
	PlatformLinkedIn: {},
	PlatformTikTok:   {},
	PlatformReddit:   {},
	PlatformSpotify:  {},
}

// Known informa se a plataforma pertence ao conjunto conhecido.
func (p Platform) Known() bool {
	_, ok := knownPlatforms[p]
	return ok
}

func (p Platform) String() string {
	return string(p)
}
