package card

import "fmt"

var weaponTitles = []string{
	"AK-47", "M4A1", "Type 95", "AWP Sniper", "Desert Eagle", "MP5 SMG", "Glock 18", "SCAR-L",
	"M16A4", "FAMAS", "AUG", "P90", "UMP45", "Vector", "UZI", "Kar98k",
	"M24", "AWM", "SKS", "VSS", "MK14", "Mini14", "SLR", "QBU",
	"M249", "DP-28", "M134 Minigun", "Groza", "Beryl M762", "AKM", "M762", "Mk47 Mutant",
	"S12K", "S1897", "S686", "Sawed-off", "M1014", "Spas-12", "Win94", "Crossbow",
	"P18C", "P1911", "P92", "R1895", "R45", "Skorpion", "Flare Gun", "M79",
	"RPG-7", "Grenade Launcher", "Flame Thrower", "Compound Bow",
}

// Landmark photos used as card backs.
var landmarkBacks = []string{
	"https://images.unsplash.com/photo-1508804185872-d7badad00f7d?auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1547981609-4b6bfe67ca0b?auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1529921879218-f996677ca76e?auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1599661046289-e31897846e41?auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1523731407965-2430cd12f5e4?auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1525097487452-6278ff080c31?auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1541300154609-902e41814429?auto=format&fit=crop&w=400&q=80",
	"https://images.unsplash.com/photo-1583141150376-749174175783?auto=format&fit=crop&w=400&q=80",
}

const faceURLFormat = "https://loremflickr.com/400/600/gun,weapon,rifle,pistol?lock=%d"

// DefaultCatalog is the stock artwork: a weapon title and photo per card and a
// rotating landmark back. Entries line up with the build order of a full deck.
func DefaultCatalog() Catalog {
	faces := make([]string, len(weaponTitles))
	for index := range faces {
		faces[index] = fmt.Sprintf(faceURLFormat, index+100)
	}
	return Catalog{
		Titles:   append([]string(nil), weaponTitles...),
		FaceURLs: faces,
		BackURLs: append([]string(nil), landmarkBacks...),
	}
}
