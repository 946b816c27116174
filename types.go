package ace

// AngularVariantKind tags which of the three AND-block representations
// a given incident energy uses, per spec.md §3/§4.7.
type AngularVariantKind int

const (
	AngularIsotropic AngularVariantKind = iota
	AngularEquiprobable32
	AngularTabular
	// AngularDeferred marks an AND-block locator of -1: the
	// distribution is given within the corresponding energy-law data
	// instead (spec.md §4.7), and is not resolved here.
	AngularDeferred
)

// AngularBin holds one incident-energy's angular distribution. Cosine,
// Pdf, and Cdf are nil for AngularDeferred and for an AngularIsotropic
// bin that covers a whole distribution (AND locator 0, or a Law 61
// locator of 0); a per-energy isotropic bin (lc == 0) carries
// Cosine=[-1,1], Pdf=[1], Cdf=[1].
type AngularBin struct {
	Energy      float64
	VariantKind AngularVariantKind
	Interp      int // JJ interpolation flag, tabular variant only
	Cosine      []float64
	Pdf         []float64
	Cdf         []float64
}

// AngularDistribution carries one AngularBin per incident energy for a
// single MT (or the distinguished "elastic" key), per spec.md §3.
type AngularDistribution struct {
	MT   int
	Bins []AngularBin
}

// NBTINT is an ENDF interpolation-region descriptor: NBT marks the
// upper index of each region, INT the interpolation law in effect up
// to that index.
type NBTINT struct {
	NBT []int
	INT []int
}

// Yield is a reaction's secondary-particle multiplicity: either a
// constant (Constant, from |TYR|) or an energy-dependent table decoded
// from the DLW block per spec.md §4.6/§4.8.
type Yield struct {
	Constant    int
	IsEnergyDep bool
	Regions     NBTINT
	Energy      []float64
	Value       []float64
}

// LawID enumerates the ENDF/MCNP secondary-energy-distribution law
// identifiers spec.md §3 names.
type LawID int

const (
	Law1  LawID = 1
	Law2  LawID = 2
	Law3  LawID = 3
	Law4  LawID = 4
	Law5  LawID = 5
	Law7  LawID = 7
	Law9  LawID = 9
	Law11 LawID = 11
	Law22 LawID = 22
	Law24 LawID = 24
	Law44 LawID = 44
	Law61 LawID = 61
	Law66 LawID = 66
	Law67 LawID = 67
)

// LawPayload is a tagged union over the eleven decoded law payloads
// plus the Unsupported/Unknown extension points, per
// spec.md §9 ("dynamic dispatch -> tagged variants"). Exactly one
// field is populated, matching the LAW id on the enclosing
// SecondaryDistribution.
type LawPayload struct {
	Law1  *Law1Payload
	Law3  *Law3Payload
	Law4  *Law4Payload
	Law5  *SpectrumPayload
	Law7  *SpectrumPayload
	Law9  *SpectrumPayload
	Law11 *Law11Payload
	Law44 *Law44Payload
	Law61 *Law61Payload
	Law66 *Law66Payload
	Law67 *Law67Payload

	// Unsupported is set for laws 2, 22, 24: recognized but not
	// decoded (spec.md §4.9).
	Unsupported int

	// Unknown is set for any LAW id absent from the registry
	// (spec.md §7/§8 scenario 6).
	Unknown int
}

// Law1Payload is the equiprobable-outgoing-energy-bin law.
type Law1Payload struct {
	Regions NBTINT
	Ein     []float64
	OutBins [][]float64 // per incident energy, NET outgoing-energy bin edges
}

// Law3Payload is level scattering: two scalars.
type Law3Payload struct {
	LDAT0 float64
	LDAT1 float64
}

// TabularOutgoing is one incident energy's continuous tabular
// outgoing-energy distribution, shared by laws 4, 44, and 61.
type TabularOutgoing struct {
	Energy    float64
	Interp    int // INTT_small after ND extraction
	NDiscrete int
	Eout      []float64
	Pdf       []float64
	Cdf       []float64
}

// Law4Payload is the continuous tabular distribution (ENDF Law 4/ACE
// LAW=4), shared prelude with laws 44/61/67.
type Law4Payload struct {
	Regions  NBTINT
	Ein      []float64
	Locators []int
	Outgoing []TabularOutgoing
}

// Law44Outgoing adds Kalbach-Mann R/A arrays to TabularOutgoing.
type Law44Outgoing struct {
	TabularOutgoing
	R []float64
	A []float64
}

// Law44Payload is the Kalbach-Mann systematics law.
type Law44Payload struct {
	Regions  NBTINT
	Ein      []float64
	Locators []int
	Outgoing []Law44Outgoing
}

// AngularBinRef is one outgoing-energy point's angular distribution
// within a Law 61 record: either isotropic or a full tabular record
// laid out like a tabular AND-block entry (JJ, NP, cos, pdf, cdf).
type AngularBinRef struct {
	Isotropic bool
	Bin       AngularBin
}

// Law61Outgoing is one incident energy's tabular energy distribution
// plus, for each outgoing-energy point, its angular distribution.
type Law61Outgoing struct {
	TabularOutgoing
	Angular []AngularBinRef
}

// Law61Payload is the correlated angle-energy law.
type Law61Payload struct {
	Regions  NBTINT
	Ein      []float64
	Locators []int
	Outgoing []Law61Outgoing
}

// SpectrumPayload covers laws 5, 7, and 9, which share the "spectrum
// prelude" (NR/NBT/INT, NE, Ein, T). U is populated only for laws 7
// and 9 (restriction energy); X is populated only for law 5 (the
// outgoing-energy bin-boundary scaling array).
type SpectrumPayload struct {
	Regions NBTINT
	Ein     []float64
	T       []float64
	U       float64
	HasU    bool
	X       []float64 // law 5 only
}

// Law11Payload is the level-density evaporation-spectrum law: two
// tabulated parameters a(E) and b(E), each with its own NR/NBT/INT
// prelude, plus a restriction energy U.
type Law11Payload struct {
	ARegions NBTINT
	AEin     []float64
	AValues  []float64
	BRegions NBTINT
	BEin     []float64
	BValues  []float64
	U        float64
}

// Law66Payload is N-body phase space: two scalars.
type Law66Payload struct {
	NBodies        int     // NPSX
	TotalMassRatio float64 // A_p
}

// Law67CosineBin is one secondary-cosine's outgoing-energy
// distribution within a Law 67 record.
type Law67CosineBin struct {
	Cosine float64
	Interp int // INTEP
	Eout   []float64
	Pdf    []float64
	Cdf    []float64
}

// Law67Incident is one incident energy's lab angle-energy
// distribution: an interpolation flag, a secondary-cosine grid, and
// per-cosine outgoing-energy distributions.
type Law67Incident struct {
	Energy float64
	Interp int // INTMU
	Cosine []float64
	Bins   []Law67CosineBin
}

// Law67Payload is the lab-frame correlated angle-energy law.
type Law67Payload struct {
	Incidents []Law67Incident
}

// SecondaryDistribution is one MT's (or precursor family's) complete
// secondary-energy-distribution record: law id, probability-vs-incident-
// energy table, yield, and the law-specific payload, per spec.md §3.
type SecondaryDistribution struct {
	MT          int
	Law         int
	Regions     NBTINT
	Ein         []float64
	Probability []float64
	Yield       Yield
	Payload     LawPayload
}

// NubarTable is one tabular or polynomial nubar record, per spec.md
// §4.5.
type NubarTable struct {
	Polynomial bool

	// Polynomial form.
	Coefficients []float64

	// Tabular form.
	Regions NBTINT
	Energy  []float64
	Value   []float64
}

// PrecursorFamily is one delayed-neutron precursor group: a decay
// constant, its emission-probability-vs-energy table, and the
// associated emitted-neutron energy distribution, per spec.md §4.5.
type PrecursorFamily struct {
	DecayConstant float64
	Regions       NBTINT
	Energy        []float64
	Probability   []float64
	Distribution  SecondaryDistribution
}

// DelayedNubar is the delayed-neutron nubar record: a nubar table
// (polynomial or tabular, as decodeNubarTable reads it) plus one
// PrecursorFamily per family.
type DelayedNubar struct {
	Table      NubarTable
	Precursors []PrecursorFamily
}

// Nubar bundles up to three nubar variants, per spec.md §3.
type Nubar struct {
	HasPrompt  bool
	Prompt     NubarTable
	HasTotal   bool
	Total      NubarTable
	HasDelayed bool
	Delayed    DelayedNubar
}

// CEPayload is the continuous-energy neutron table's decoded content,
// per spec.md §3.
type CEPayload struct {
	Energies []float64

	XS map[int]CrossSection

	MTList       []int
	QValues      []float64
	ReactionType []int // signed; sign = frame, magnitude = multiplicity or >100 flag

	AngularDist   map[string]AngularDistribution // MT formatted as string, or "elastic"
	SecondaryDist map[int]SecondaryDistribution

	Nubar *Nubar
}

// SABEquiprobableBin is the inelastic outgoing energy/angle distribution
// for one incident energy under the constant equiprobable-bin
// representation (NXS[7]==1), per spec.md §4.10/ITXE.
type SABEquiprobableBin struct {
	Eout   []float64   // one per outgoing-energy group
	Cosine [][]float64 // per group, NXS[3]+1 equiprobable cosines
}

// SABContinuousBin is one outgoing-energy record under the continuous
// tabulated representation (NXS[7]==2).
type SABContinuousBin struct {
	Eout   float64
	Pdf    float64
	Cdf    float64
	Cosine []float64
}

// SABPayload is the S(α,β) table's decoded content, per spec.md §3/§4.10.
type SABPayload struct {
	InelasticEnergy []float64
	InelasticXS     []float64

	HasElastic bool
	// ElasticEnergy/ElasticXS carry the elastic cross section as
	// stored, except when NXS[5]==4 (coherent/Bragg-edge elastic):
	// then unnormalizeBraggEdges has already expanded these to 2N-1
	// points, so their length need not match the NXS[6]+1-per-energy
	// indexing ElasticCosines below uses.
	ElasticEnergy []float64
	ElasticXS     []float64

	HasElasticAngles bool
	ElasticCosines   [][]float64 // per elastic energy, NXS[6]+1 equiprobable cosines

	// At most one of Equiprobable/Continuous is populated, selected by
	// NXS[7] (1 or 2); for any other NXS[7] both are nil.
	Equiprobable []SABEquiprobableBin
	Continuous   [][]SABContinuousBin // per incident energy, nbin records
}
