package graph

// Effect is the signed orientation code of an edge.
type Effect int

const (
	EffectUnknown       Effect = 0  // orientation unknown (---)
	EffectActivating    Effect = 1  // activating (-->)
	EffectInhibiting    Effect = -1 // inhibiting (--|)
	EffectBidirectional Effect = 2  // bidirectional, e.g. protein complex (<->)
)

// Oriented reports whether the effect carries direction information.
func (e Effect) Oriented() bool { return e != EffectUnknown }

// Bidirected reports whether an edge with this effect stands for a pair of
// opposing one-way edges. The -2 case is recognised for completeness; the
// classifier never produces it.
func (e Effect) Bidirected() bool {
	return e == EffectUnknown || e == EffectBidirectional || e == -EffectBidirectional
}

// Chemical modification tags carried on edges.
const (
	ModPhosphorylation   = "+p"
	ModDephosphorylation = "-p"
	ModGlycosylation     = "+g"
	ModUbiquitination    = "+u"
	ModMethylation       = "+m"
	ModExpression        = "e" // transcriptional expression or repression
)

// Origin records which source record produced an edge.
type Origin string

const (
	OriginReaction Origin = "reaction"
	OriginRelation Origin = "relation"
	OriginComplex  Origin = "complex" // intra-group member edge
	OriginInferred Origin = "inferred"
)

// Edge is one directed, typed interaction.
type Edge struct {
	Source       int
	Target       int
	Origin       Origin
	RelationType string // relation category or reaction name
	Effect       Effect
	Indirect     bool
	Modification string
}

// update is the partial edge change a single classification rule applies.
type update struct {
	effect       Effect
	setEffect    bool
	indirect     bool
	modification string
	setMod       bool
}

// classificationPasses is the full rule table, applied pass by pass in
// order. Order is load-bearing: descriptors handled by a later pass are
// more specific and must overwrite values set by an earlier one, so the
// coarse orientation pass runs first and the fine orientation pass last.
// A descriptor no pass recognises is skipped, tolerating vocabulary the
// format grows later.
var classificationPasses = []map[string]update{
	// Pass 1: coarse orientation.
	{
		"binding/association": {effect: EffectBidirectional, setEffect: true},
		"protein complex":     {effect: EffectBidirectional, setEffect: true},
		"bidirected":          {effect: EffectBidirectional, setEffect: true},
		"dissociation":        {effect: EffectActivating, setEffect: true},
		"missing interaction": {effect: EffectUnknown, setEffect: true},
		"indirect effect":     {effect: EffectActivating, setEffect: true, indirect: true},
	},
	// Pass 2: chemical modification. Dephosphorylation is still an
	// activating edge; the tag alone keeps the direction asymmetry.
	{
		"phosphorylation":   {effect: EffectActivating, setEffect: true, modification: ModPhosphorylation, setMod: true},
		"dephosphorylation": {effect: EffectActivating, setEffect: true, modification: ModDephosphorylation, setMod: true},
		"glycosylation":     {effect: EffectActivating, setEffect: true, modification: ModGlycosylation, setMod: true},
		"ubiquitination":    {effect: EffectActivating, setEffect: true, modification: ModUbiquitination, setMod: true},
		"methylation":       {effect: EffectActivating, setEffect: true, modification: ModMethylation, setMod: true},
	},
	// Pass 3: fine orientation, highest priority.
	{
		"activation": {effect: EffectActivating, setEffect: true},
		"inhibition": {effect: EffectInhibiting, setEffect: true},
		"expression": {effect: EffectActivating, setEffect: true, modification: ModExpression, setMod: true},
		"repression": {effect: EffectInhibiting, setEffect: true, modification: ModExpression, setMod: true},
	},
}

// classify maps a set of interaction descriptors to a structured edge.
// Reaction steps are always classified with ["activation"]: reactions
// express direction through substrate/product roles, never inhibition.
func classify(source, target int, origin Origin, category string, descriptors []string) Edge {
	edge := Edge{
		Source:       source,
		Target:       target,
		Origin:       origin,
		RelationType: category,
		Effect:       EffectUnknown,
	}

	for _, pass := range classificationPasses {
		for _, d := range descriptors {
			u, ok := pass[d]
			if !ok {
				continue
			}
			if u.setEffect {
				edge.Effect = u.effect
			}
			if u.indirect {
				edge.Indirect = true
			}
			if u.setMod {
				edge.Modification = u.modification
			}
		}
	}

	return edge
}
