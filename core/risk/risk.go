// core/risk/risk.go
// Severity classification of a fold with respect to the primer's 3'
// end. A polymerase extends from the 3' terminus; structure that
// commits those bases to a stem blocks extension, so stability and 3'
// involvement combine into a tier. Classify never fails.
package risk

import (
	"math"

	"hairpin-core/structure"
)

// Tier orders severities from harmless to disqualifying.
type Tier int

const (
	TierNone Tier = iota
	TierInfo
	TierLow
	TierModerate
	TierWarning
	TierCritical
)

func (t Tier) String() string {
	switch t {
	case TierInfo:
		return "info"
	case TierLow:
		return "low"
	case TierModerate:
		return "moderate"
	case TierWarning:
		return "warning"
	case TierCritical:
		return "critical"
	default:
		return "none"
	}
}

// Classification is the renderer-facing verdict.
type Classification struct {
	Tier       Tier
	Label      string
	Message    string
	ShouldWarn bool
}

// DefaultCriticalWindow is the size of the 3' critical region: the
// last bases whose structural involvement threatens extension.
const DefaultCriticalWindow = 10

var tierText = map[Tier]struct{ label, message string }{
	TierNone:     {"no structure", "no significant secondary structure at this temperature"},
	TierInfo:     {"minimal", "marginal self-structure; no impact on extension expected"},
	TierLow:      {"weak hairpin", "weak self-structure; acceptable for most reactions"},
	TierModerate: {"moderate hairpin", "noticeable self-structure; consider raising annealing temperature"},
	TierWarning:  {"strong hairpin", "stable self-structure; verify the 3' end stays single-stranded"},
	TierCritical: {"3' end blocked", "redesign: a free 3' end is required for polymerase extension"},
}

// Classify maps a fold (energy, pairing) over a sequence of length
// seqLen to a severity tier. window is the 3' critical-region size;
// values < 1 take DefaultCriticalWindow. Undefined energies are
// treated as zero. Threshold boundaries belong to the more severe
// band, so an energy of exactly -3 with a 3' stem contact is critical.
func Classify(energy float64, pairs []structure.Pair, seqLen, window int) Classification {
	if window < 1 {
		window = DefaultCriticalWindow
	}
	if math.IsNaN(energy) || math.IsInf(energy, 0) {
		energy = 0
	}

	stemTouch, loopTouch := touch3(pairs, seqLen, window)

	var tier Tier
	switch {
	case energy > -0.5:
		tier = TierNone
	case stemTouch && energy <= -3:
		// The 3' end is paired into a stem stable enough to resist
		// breathing at annealing temperatures.
		tier = TierCritical
	case energy <= -4:
		// Very stable fold, but the 3' terminus itself stays free.
		tier = TierWarning
	case (stemTouch || loopTouch) && energy <= -2:
		tier = TierWarning
	default:
		tier = band(energy)
	}

	txt := tierText[tier]
	return Classification{
		Tier:       tier,
		Label:      txt.label,
		Message:    txt.message,
		ShouldWarn: tier > TierInfo,
	}
}

// band is the plain energy tiering, ignoring 3' contacts. Strict
// comparisons put each boundary in the more severe band.
func band(energy float64) Tier {
	switch {
	case energy > -1:
		return TierInfo
	case energy > -2:
		return TierLow
	case energy > -3:
		return TierModerate
	case energy > -4:
		return TierWarning
	default:
		return TierCritical
	}
}

// touch3 reports how the pairing contacts the 3' critical region:
// stemTouch when a paired base lies inside it (rigid, structurally
// committed), loopTouch when only enclosed unpaired bases do (more
// flexible).
func touch3(pairs []structure.Pair, seqLen, window int) (stemTouch, loopTouch bool) {
	start := seqLen - window
	if start < 0 {
		start = 0
	}

	paired := make(map[int]bool, len(pairs)*2)
	for _, p := range pairs {
		paired[p.I] = true
		paired[p.J] = true
		if p.I >= start || p.J >= start {
			stemTouch = true
		}
	}
	for k := start; k < seqLen && !loopTouch; k++ {
		if paired[k] {
			continue
		}
		for _, p := range pairs {
			lo, hi := p.I, p.J
			if hi < lo {
				lo, hi = hi, lo
			}
			if lo < k && k < hi {
				loopTouch = true
				break
			}
		}
	}
	return stemTouch, loopTouch
}
