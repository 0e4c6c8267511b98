package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

// ExtractionError reports a required field whose pattern could not be found
// (or whose captured value could not be converted).
type ExtractionError struct {
	Field string
	Err   error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not parse %s: %v", e.Field, e.Err)
	}
	return "could not parse " + e.Field
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Literal fragments of the minified bundle that are matched verbatim.
const (
	breakpointQuery = "(max-width: ${p.laptop}px)"
	hiddenFormula   = "me=x===`static`?-D-10:p?-D:-D-Z*2"
	variantFormula  = "P=w?`static`:p?`mobile`:`collapsed`"
	storedSetting   = ",Q.browserSession,{onUpdate:e=>{e.updateSidebarWidthForSplashScreen()}})],$.prototype,"
)

var (
	assetRe           = regexp.MustCompile(`assets/[A-Za-z0-9_.-]+\.js`)
	manifestSourceRe  = regexp.MustCompile(`manifest_source:\s*(.+)`)
	assetHostRe       = regexp.MustCompile(`asset_host:\s*(.+)`)
	laptopRe          = regexp.MustCompile(`laptop:(\d+)`)
	breakpointQueryRe = regexp.MustCompile(regexp.QuoteMeta(breakpointQuery))
	minWidthRe        = regexp.MustCompile(`X=(\d+),Z=`)
	collapsedMarginRe = regexp.MustCompile(`X=\d+,Z=(\d+)`)
	maxWidthRe        = regexp.MustCompile(`D=p\?(\d+):ce`)
	hiddenFormulaRe   = regexp.MustCompile(regexp.QuoteMeta(hiddenFormula))
	variantFormulaRe  = regexp.MustCompile(regexp.QuoteMeta(variantFormula))
	edgeTopRe         = regexp.MustCompile(`top:(-?\d+)px;left:`)
	edgeRightRe       = regexp.MustCompile(`right:(-?\d+)px;bottom:`)
	edgeBottomRe      = regexp.MustCompile(`bottom:(-?\d+)px;`)
	edgeLeftRe        = regexp.MustCompile(`trafficLightPosition\?(-?\d+):(-?\d+)`)
	sidebarWidthRe    = regexp.MustCompile(`Z\((\d+)` + regexp.QuoteMeta(storedSetting+"`sidebarWidth`"))
	sidebarCollapseRe = regexp.MustCompile(`Z\((!0|!1)` + regexp.QuoteMeta(storedSetting+"`sidebarCollapsed`"))
)

// minifiedBools maps the minifier's boolean spellings. Anything else is
// rejected rather than coerced.
var minifiedBools = map[string]bool{
	"!0": true,
	"!1": false,
}

// CanonicalVariants lists the sidebar display modes in their documented order.
// It is not derived from the capture.
var CanonicalVariants = []string{"static", "collapsed", "mobile"}

// Extract builds a Summary from a raw capture. Lookups run in a fixed order
// and the first missing field aborts the whole extraction.
func Extract(text string) (Summary, error) {
	m := &matcher{text: text}

	assets := Assets(text)
	manifestSource := m.group(manifestSourceRe, "manifest source", 1)
	assetHost := m.group(assetHostRe, "asset host", 1)

	laptop := m.integer(laptopRe, "laptop breakpoint", 1)
	query := m.group(breakpointQueryRe, "laptop media query", 0)

	minWidth := m.integer(minWidthRe, "minimum width", 1)
	collapsedMargin := m.integer(collapsedMarginRe, "collapsed margin", 1)
	maxWidth := m.integer(maxWidthRe, "mobile width cap", 1)
	hidden := m.group(hiddenFormulaRe, "hidden offset formula", 0)
	variant := m.group(variantFormulaRe, "variant formula", 0)

	edgeTop := m.integer(edgeTopRe, "collapsed edge top", 1)
	edgeRight := m.integer(edgeRightRe, "collapsed edge right", 1)
	edgeBottom := m.integer(edgeBottomRe, "collapsed edge bottom", 1)
	left := m.submatch(edgeLeftRe, "collapsed edge left offsets")
	var leftTraffic, leftDefault int
	if left != nil {
		leftTraffic = m.atoi("collapsed edge left offsets", left[1])
		leftDefault = m.atoi("collapsed edge left offsets", left[2])
	}

	sidebarWidth := m.integer(sidebarWidthRe, "default sidebar width", 1)
	sidebarCollapsed := m.boolean(sidebarCollapseRe, "default sidebar collapsed", 1)

	if m.err != nil {
		return Summary{}, m.err
	}

	return Summary{
		Source: Source{
			ManifestSource: manifestSource,
			AssetHost:      assetHost,
			Assets:         assets,
		},
		Breakpoint: Breakpoint{
			Name:     "laptop",
			Value:    laptop,
			Query:    query,
			Consumer: "isSmall = M(A)",
		},
		Variants: Variants{
			Canonical: append([]string(nil), CanonicalVariants...),
			Formula:   variant,
		},
		Width: Width{
			Min:             minWidth,
			Max:             maxWidth,
			CollapsedMargin: collapsedMargin,
			DesktopFormula:  "D = sidebarWidth",
			MobileFormula:   fmt.Sprintf("D = %d", maxWidth),
		},
		HiddenOffset: HiddenOffset{
			Formula: hidden,
			Resolved: ResolvedOffset{
				ResizingStatic:   "-D - 10",
				Mobile:           "-D",
				DesktopCollapsed: "-D - 12",
			},
		},
		Geometry: Geometry{
			CollapsedDesktop: CollapsedDesktop{Margin: collapsedMargin, BorderRadius: 5},
			MobileSheet: MobileSheet{
				FullHeight:   true,
				Margin:       0,
				BorderRadius: 0,
				MaxWidth:     fmt.Sprintf("min(calc(100vw - 40px), %dpx)", maxWidth),
			},
			CollapsedEdgeHitArea: EdgeHitArea{
				Top:              edgeTop,
				Right:            edgeRight,
				Bottom:           edgeBottom,
				LeftTrafficLight: leftTraffic,
				LeftDefault:      leftDefault,
			},
		},
		Defaults: Defaults{
			SidebarWidth:     sidebarWidth,
			SidebarCollapsed: sidebarCollapsed,
		},
	}, nil
}

// Assets returns every distinct bundle path in text, sorted ascending. The
// result is never nil.
func Assets(text string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, a := range assetRe.FindAllString(text, -1) {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// matcher runs lookups against one text and keeps the first failure. Once
// err is set every later lookup is a no-op, so the reported field is always
// the first one in call order.
type matcher struct {
	text string
	err  error
}

func (m *matcher) fail(field string, err error) {
	if m.err == nil {
		m.err = &ExtractionError{Field: field, Err: err}
	}
}

func (m *matcher) submatch(re *regexp.Regexp, field string) []string {
	if m.err != nil {
		return nil
	}
	sm := re.FindStringSubmatch(m.text)
	if sm == nil {
		m.fail(field, nil)
		return nil
	}
	return sm
}

func (m *matcher) group(re *regexp.Regexp, field string, n int) string {
	sm := m.submatch(re, field)
	if sm == nil {
		return ""
	}
	return sm[n]
}

func (m *matcher) integer(re *regexp.Regexp, field string, n int) int {
	sm := m.submatch(re, field)
	if sm == nil {
		return 0
	}
	return m.atoi(field, sm[n])
}

func (m *matcher) atoi(field, s string) int {
	if m.err != nil {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		m.fail(field, err)
		return 0
	}
	return v
}

func (m *matcher) boolean(re *regexp.Regexp, field string, n int) bool {
	sm := m.submatch(re, field)
	if sm == nil {
		return false
	}
	v, ok := minifiedBools[sm[n]]
	if !ok {
		m.fail(field, fmt.Errorf("unrecognized boolean token %q", sm[n]))
		return false
	}
	return v
}
