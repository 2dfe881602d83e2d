package main

import (
	"math/rand"
	"strings"
)

// ScenarioTag is a rough classification of the disaster text, used to bias
// bot voting toward seats that are a bad fit for the scenario.
type ScenarioTag string

const (
	TagCold   ScenarioTag = "cold"
	TagBio    ScenarioTag = "bio"
	TagWar    ScenarioTag = "war"
	TagFlood  ScenarioTag = "flood"
	TagFamine ScenarioTag = "famine"
)

var scenarioKeywords = map[ScenarioTag][]string{
	TagCold:   {"frost", "freez", "ice age", "winter", "blizzard", "cold", "snow"},
	TagBio:    {"virus", "plague", "pandemic", "infect", "disease", "outbreak", "biolog", "zombie"},
	TagWar:    {"war", "nuclear", "bomb", "invasion", "missile", "radiat", "battle"},
	TagFlood:  {"flood", "tsunami", "deluge", "ocean", "sea level", "drown"},
	TagFamine: {"famine", "drought", "starv", "crops", "harvest", "food ran out"},
}

// classifyScenario matches the scenario prose against the keyword lists.
// Zero or more tags can be active at once.
func classifyScenario(text string) map[ScenarioTag]bool {
	tags := make(map[ScenarioTag]bool)
	lower := strings.ToLower(text)
	for tag, words := range scenarioKeywords {
		for _, w := range words {
			if strings.Contains(lower, w) {
				tags[tag] = true
				break
			}
		}
	}
	return tags
}

// Scoring weights. Positive pushes a candidate toward elimination, negative
// protects them.
const (
	penBadHealth    = 12
	penContagious   = 10
	bonGoodHealth   = -10
	penLowValueJob  = 8
	bonHighValueJob = -10
	bonJobTagMatch  = -8
	penAgeExtreme   = 8
	bonAgePrime     = -6
	bonAgeHarshTag  = -4
	bonUsefulItem   = -6
	bonItemTagMatch = -6
	bonWeaponAtWar  = -8
	penWeaponThreat = 10
	penPhobiaMatch  = 10
	jitterSpan      = 15
)

var (
	badHealthWords  = []string{"asthma", "diabet", "cancer", "chronic", "allerg", "infertil", "short-sight", "blind", "fatigue"}
	contagiousWords = []string{"flu", "tuberculosis", "infection", "virus", "hepatitis", "cough"}
	goodHealthWords = []string{"perfect", "excellent", "healthy", "athletic"}

	lowValueJobs  = []string{"blogger", "model", "influencer", "clerk", "actor", "critic", "unemployed"}
	highValueJobs = []string{"doctor", "medic", "surgeon", "nurse", "engineer", "mechanic", "electrician", "soldier", "military", "farmer", "builder", "cook", "chemist"}

	jobTagWords = map[ScenarioTag][]string{
		TagBio:    {"doctor", "medic", "surgeon", "nurse", "chemist"},
		TagWar:    {"soldier", "military", "officer"},
		TagFamine: {"farmer", "cook", "agronom"},
		TagCold:   {"engineer", "electrician"},
		TagFlood:  {"engineer", "builder"},
	}

	usefulItems = []string{"first aid", "medkit", "matches", "lighter", "water", "map", "compass", "flashlight", "canned", "radio", "rope"}
	weaponItems = []string{"knife", "gun", "rifle", "pistol", "axe", "weapon"}

	itemTagWords = map[ScenarioTag][]string{
		TagCold:   {"coat", "warm", "blanket", "matches", "lighter"},
		TagWar:    {"radio", "map", "compass"},
		TagBio:    {"first aid", "medkit", "mask"},
		TagFlood:  {"rope", "boat", "raft"},
		TagFamine: {"canned", "seeds", "water"},
	}

	phobiaTagWords = map[ScenarioTag][]string{
		TagCold:   {"cold", "frost", "winter"},
		TagFlood:  {"aqua", "hydro", "water", "drown"},
		TagWar:    {"blood", "loud", "violence", "hopl"},
		TagBio:    {"germ", "myso", "disease", "needle"},
		TagFamine: {"hunger"},
	}
)

func matchesAny(value string, words []string) bool {
	lower := strings.ToLower(value)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// BotMind is the heuristic decision-maker for bot seats. It only ever reads
// revealed trait categories; hidden traits never influence its choices.
type BotMind struct {
	rng *rand.Rand
}

func newBotMind(rng *rand.Rand) *BotMind {
	return &BotMind{rng: rng}
}

// revealedTrait returns the candidate's value for a category only when that
// category is public.
func revealedTrait(seat *Seat, cat TraitCategory) (string, bool) {
	if !seat.Revealed[cat] {
		return "", false
	}
	v, ok := seat.Traits[cat]
	return v, ok
}

// scoreSeat accumulates the elimination score for one candidate from its
// revealed traits under the active scenario tags. Higher means more likely
// to be voted out.
func scoreSeat(seat *Seat, tags map[ScenarioTag]bool) (int, []string) {
	score := 0
	var reasons []string

	if health, ok := revealedTrait(seat, TraitHealth); ok {
		switch {
		case matchesAny(health, goodHealthWords):
			score += bonGoodHealth
		case matchesAny(health, badHealthWords) || matchesAny(health, contagiousWords):
			score += penBadHealth
			reasons = append(reasons, "their health is a liability down there")
			if tags[TagBio] && matchesAny(health, contagiousWords) {
				score += penContagious
				reasons = append(reasons, "they could infect the whole bunker")
			}
		}
	}

	if job, ok := revealedTrait(seat, TraitProfession); ok {
		if matchesAny(job, lowValueJobs) {
			score += penLowValueJob
			reasons = append(reasons, "their profession is useless to us")
		}
		if matchesAny(job, highValueJobs) {
			score += bonHighValueJob
		}
		for tag := range tags {
			if matchesAny(job, jobTagWords[tag]) {
				score += bonJobTagMatch
			}
		}
	}

	if seat.Revealed[TraitAge] {
		if age, ok := seat.Traits.ageOf(); ok {
			switch {
			case age < 21 || age > 60:
				score += penAgeExtreme
				reasons = append(reasons, "their age is against them")
			case age >= 25 && age <= 45:
				score += bonAgePrime
				if tags[TagWar] || tags[TagFamine] {
					score += bonAgeHarshTag
				}
			}
		}
	}

	if item, ok := revealedTrait(seat, TraitInventory); ok {
		if matchesAny(item, usefulItems) {
			score += bonUsefulItem
		}
		for tag := range tags {
			if matchesAny(item, itemTagWords[tag]) {
				score += bonItemTagMatch
			}
		}
		if matchesAny(item, weaponItems) {
			// A weapon is worth having in a war and a threat everywhere else.
			if tags[TagWar] {
				score += bonWeaponAtWar
			} else {
				score += penWeaponThreat
				reasons = append(reasons, "they are armed, and that makes them dangerous")
			}
		}
	}

	if phobia, ok := revealedTrait(seat, TraitPhobia); ok {
		for tag := range tags {
			if matchesAny(phobia, phobiaTagWords[tag]) {
				score += penPhobiaMatch
				reasons = append(reasons, "their phobia fits this disaster exactly")
				break
			}
		}
	}

	return score, reasons
}

// ScoreCandidates returns the raw (un-jittered) score per seat number for
// every survivor.
func (m *BotMind) ScoreCandidates(room *Room, survivors []*Seat) map[int]int {
	tags := classifyScenario(room.Scenario)
	scores := make(map[int]int, len(survivors))
	for _, seat := range survivors {
		score, _ := scoreSeat(seat, tags)
		scores[seat.No] = score
	}
	return scores
}

var fillerReasons = []string{
	"Just a gut feeling.",
	"Someone has to go, and the air is getting thin.",
	"I don't trust the quiet ones.",
	"Nothing personal. The bunker is small.",
}

// ChooseTarget picks the candidate with the highest jittered score among the
// living seats, excluding the bot itself. The jitter keeps several bots in
// the same room from always forming a bloc. Returns a short justification
// built from whichever scoring reasons fired.
func (m *BotMind) ChooseTarget(bot *Seat, room *Room, survivors []*Seat) (*Seat, string) {
	tags := classifyScenario(room.Scenario)

	var best *Seat
	bestScore := 0
	var bestReasons []string
	for _, seat := range survivors {
		if seat.No == bot.No || !seat.Alive {
			continue
		}
		score, reasons := scoreSeat(seat, tags)
		score += m.rng.Intn(2*jitterSpan+1) - jitterSpan
		if best == nil || score > bestScore {
			best, bestScore, bestReasons = seat, score, reasons
		}
	}

	if best == nil {
		// No scored candidate; fall back to a random living seat.
		var others []*Seat
		for _, seat := range room.AliveSeats() {
			if seat.No != bot.No {
				others = append(others, seat)
			}
		}
		if len(others) == 0 {
			return nil, ""
		}
		best = others[m.rng.Intn(len(others))]
	}

	if len(bestReasons) > 0 {
		return best, bestReasons[m.rng.Intn(len(bestReasons))]
	}
	return best, fillerReasons[m.rng.Intn(len(fillerReasons))]
}
