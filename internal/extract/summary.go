package extract

// Summary is the normalized description of the sidebar configuration found in
// a raw capture. Field names and nesting are consumed by other tooling and must
// stay stable.
type Summary struct {
	Source       Source       `json:"source"`
	Breakpoint   Breakpoint   `json:"breakpoint"`
	Variants     Variants     `json:"variants"`
	Width        Width        `json:"width"`
	HiddenOffset HiddenOffset `json:"hidden_offset"`
	Geometry     Geometry     `json:"geometry"`
	Defaults     Defaults     `json:"defaults"`
}

// Source records where the capture came from.
type Source struct {
	ManifestSource string `json:"manifest_source"`
	AssetHost      string `json:"asset_host"`
	// Assets is deduplicated and sorted ascending.
	Assets []string `json:"assets"`
}

type Breakpoint struct {
	Name     string `json:"name"`
	Value    int    `json:"value"`
	Query    string `json:"query"`
	Consumer string `json:"consumer"`
}

type Variants struct {
	Canonical []string `json:"canonical"`
	Formula   string   `json:"formula"`
}

type Width struct {
	Min             int    `json:"min"`
	Max             int    `json:"max"`
	CollapsedMargin int    `json:"collapsed_margin"`
	DesktopFormula  string `json:"desktop_formula"`
	MobileFormula   string `json:"mobile_formula"`
}

type HiddenOffset struct {
	Formula  string         `json:"formula"`
	Resolved ResolvedOffset `json:"resolved"`
}

// ResolvedOffset maps each sidebar case to the simplified translate expression.
type ResolvedOffset struct {
	ResizingStatic   string `json:"resizingMode_static"`
	Mobile           string `json:"mobile"`
	DesktopCollapsed string `json:"desktop_collapsed"`
}

type Geometry struct {
	CollapsedDesktop     CollapsedDesktop `json:"collapsed_desktop"`
	MobileSheet          MobileSheet      `json:"mobile_sheet"`
	CollapsedEdgeHitArea EdgeHitArea      `json:"collapsed_edge_hit_area"`
}

type CollapsedDesktop struct {
	Margin       int `json:"margin"`
	BorderRadius int `json:"border_radius"`
}

type MobileSheet struct {
	FullHeight   bool   `json:"full_height"`
	Margin       int    `json:"margin"`
	BorderRadius int    `json:"border_radius"`
	MaxWidth     string `json:"max_width"`
}

// EdgeHitArea holds the pixel offsets of the collapsed sidebar's edge target.
// The left offset depends on whether window traffic lights are shown.
type EdgeHitArea struct {
	Top              int `json:"top"`
	Right            int `json:"right"`
	Bottom           int `json:"bottom"`
	LeftTrafficLight int `json:"left_traffic_light"`
	LeftDefault      int `json:"left_default"`
}

type Defaults struct {
	SidebarWidth     int  `json:"sidebarWidth"`
	SidebarCollapsed bool `json:"sidebarCollapsed"`
}
