package interests

import (
	"sort"
	"strings"

	a "github.com/petar-dambovaliev/aho-corasick"

	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

// POIResolver is the slice of the catalog the disambiguator needs.
type POIResolver interface {
	GetPOI(id string) (types.POI, bool)
}

// Partition splits a mixed token list into explicit POI references and tag
// keywords. Upstream extraction does not distinguish the two, so a token
// that exactly matches a catalog id is an explicit reference; everything
// else is treated as a tag. References are deduplicated by id, first-seen
// order preserved.
func Partition(tokens []string, catalog POIResolver) (refs []types.POI, tags []string) {
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		if poi, ok := catalog.GetPOI(tok); ok {
			if !seen[poi.ID] {
				refs = append(refs, poi)
				seen[poi.ID] = true
			}
			continue
		}
		tags = append(tags, tok)
	}
	return refs, tags
}

// Keyword tables mapping free-text substrings to catalog tags and zone
// hints. Matched with Aho-Corasick so one pass over the input covers the
// whole table.
var (
	keywordTags = map[string][]string{
		// 历史相关
		"历史": {"history"},
		"古代": {"history"},
		"帝王": {"imperial"},
		"皇家": {"imperial"},
		"故宫": {"imperial", "architecture"},
		"宫殿": {"imperial", "architecture"},

		// 建筑相关
		"建筑": {"architecture"},
		"古建": {"architecture"},

		// 自然相关
		"自然": {"nature"},
		"园林": {"garden", "nature"},
		"公园": {"park", "nature"},
		"山水": {"nature"},

		// 文化相关
		"文化": {"culture"},
		"艺术": {"art", "culture"},
		"胡同": {"hutong", "culture"},
		"传统": {"culture"},

		// 宗教相关
		"寺庙": {"temple"},
		"佛教": {"buddhism", "temple"},
		"道教": {"taoism", "temple"},
		"宗教": {"temple"},
		"祈福": {"temple"},

		// 美食相关
		"美食": {"food"},
		"小吃": {"food"},
		"餐饮": {"food"},
	}

	zoneKeywords = map[string]string{
		"中心":  "central",
		"市中心": "central",
		"城区":  "central",
		"西边":  "west",
		"西部":  "west",
		"颐和园": "west",
		"北边":  "north",
		"北部":  "north",
		"东边":  "east",
		"东部":  "east",
	}

	tagMatcher  a.AhoCorasick
	zoneMatcher a.AhoCorasick
)

func init() {
	builder := a.NewAhoCorasickBuilder(a.Opts{
		AsciiCaseInsensitive: true,
		// Substring matching; the keywords are Chinese and have no word
		// boundaries.
		MatchOnlyWholeWords: false,
	})

	tagMatcher = builder.Build(sortedKeys(keywordTags))
	zoneMatcher = builder.Build(sortedZoneKeys())
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedZoneKeys() []string {
	keys := make([]string, 0, len(zoneKeywords))
	for k := range zoneKeywords {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Personality bundles keyed by a 2-letter axis substring, checked in fixed
// order so inference stays deterministic.
var personalityBundles = []struct {
	axis string
	tags []string
}{
	{"NT", []string{"history", "architecture", "culture"}},
	{"NF", []string{"culture", "temple", "art"}},
	{"SF", []string{"nature", "garden", "food"}},
	{"ST", []string{"landmark", "imperial"}},
}

// defaultTags is the terminal fallback of the inference cascade.
var defaultTags = []string{"history", "culture"}

// InferPreferences derives tags and zone hints from free text. The cascade
// is total: keyword table, then personality bundle, then the fixed default
// pair, so the returned tag set is never empty. Zones may be empty.
func InferPreferences(text, personality string) (tags, zones []string) {
	tags = matchTags(text)
	zones = matchZones(text)

	if len(tags) == 0 {
		tags = personalityTags(personality)
	}
	if len(tags) == 0 {
		tags = append(tags, defaultTags...)
	}
	return tags, zones
}

func matchTags(text string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, m := range tagMatcher.FindAll(text) {
		keyword := text[m.Start():m.End()]
		for _, tag := range keywordTags[keyword] {
			if !seen[tag] {
				tags = append(tags, tag)
				seen[tag] = true
			}
		}
	}
	return tags
}

func matchZones(text string) []string {
	var zones []string
	seen := make(map[string]bool)
	for _, m := range zoneMatcher.FindAll(text) {
		zone := zoneKeywords[text[m.Start():m.End()]]
		if !seen[zone] {
			zones = append(zones, zone)
			seen[zone] = true
		}
	}
	return zones
}

func personalityTags(personality string) []string {
	if personality == "" {
		return nil
	}
	upper := strings.ToUpper(personality)
	for _, bundle := range personalityBundles {
		if strings.Contains(upper, bundle.axis) {
			out := make([]string, len(bundle.tags))
			copy(out, bundle.tags)
			return out
		}
	}
	return nil
}
