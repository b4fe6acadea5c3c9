package core

// LabelTypeHeavy is the isotope label type of the built-in heavy mods.
const LabelTypeHeavy = "heavy"

// DefaultCatalog returns a catalog pre-loaded with common modifications from
// UniMod. Entries that UniMod defines on several sites carry the site in
// their name.
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	add := func(name, aas string, term Terminus, id int, mass float64) {
		c.Add(StaticMod{Name: name, AAs: aas, Terminus: term, UniModID: id, MonoMass: mass})
	}

	add("Acetyl (K)", "K", TerminusNone, 1, 42.010565)
	add("Acetyl (N-term)", "", TerminusN, 1, 42.010565)
	add("Amidated (C-term)", "", TerminusC, 2, -0.984016)
	add("Biotin", "K", TerminusNone, 3, 226.077598)
	add("Carbamidomethyl", "C", TerminusNone, 4, 57.021464)
	add("Carbamyl (K)", "K", TerminusNone, 5, 43.005814)
	add("Carbamyl (N-term)", "", TerminusN, 5, 43.005814)
	add("Carboxymethyl", "C", TerminusNone, 6, 58.005479)
	add("Deamidated", "NQ", TerminusNone, 7, 0.984016)
	add("Met->Hse", "M", TerminusC, 10, -29.992806)
	add("Met->Hsl", "M", TerminusC, 11, -48.003371)
	add("NIPCAM", "C", TerminusNone, 17, 99.068414)
	add("Phospho", "STY", TerminusNone, 21, 79.966331)
	add("Dehydrated", "ST", TerminusNone, 23, -18.010565)
	add("Propionamide", "C", TerminusNone, 24, 71.037114)
	add("Pyro-carbamidomethyl", "C", TerminusN, 26, 39.994915)
	add("Glu->pyro-Glu", "E", TerminusN, 27, -18.010565)
	add("Gln->pyro-Glu", "Q", TerminusN, 28, -17.026549)
	add("Cation:Na", "DE", TerminusNone, 30, 21.981943)
	add("Methyl", "KR", TerminusNone, 34, 14.01565)
	add("Oxidation", "M", TerminusNone, 35, 15.994915)
	add("Dimethyl (KR)", "KR", TerminusNone, 36, 28.0313)
	add("Dimethyl (N-term)", "", TerminusN, 36, 28.0313)
	add("Trimethyl", "K", TerminusNone, 37, 42.04695)
	add("Methylthio", "C", TerminusNone, 39, 45.987721)
	add("Sulfo", "Y", TerminusNone, 40, 79.956815)
	add("Hex", "K", TerminusNone, 41, 162.052824)
	add("Lipoyl", "K", TerminusNone, 42, 188.032956)
	add("HexNAc", "NST", TerminusNone, 43, 203.079373)
	add("Farnesyl", "C", TerminusNone, 44, 204.187801)
	add("Myristoyl", "G", TerminusN, 45, 210.198366)
	add("PyridoxalPhosphate", "K", TerminusNone, 46, 229.014009)
	add("Palmitoyl", "C", TerminusNone, 47, 238.229666)
	add("GeranylGeranyl", "C", TerminusNone, 48, 272.250401)
	add("Phosphopantetheine", "S", TerminusNone, 49, 340.085794)
	add("FAD", "C", TerminusNone, 50, 783.141486)
	add("Guanidinyl", "K", TerminusNone, 52, 42.021798)
	add("HNE", "CHK", TerminusNone, 53, 156.11503)
	add("Glucuronyl (N-term)", "", TerminusN, 54, 176.032088)
	add("Glutathione", "C", TerminusNone, 55, 305.068156)
	add("Propionyl", "K", TerminusNone, 58, 56.026215)
	add("iTRAQ4plex (K)", "K", TerminusNone, 214, 144.102063)
	add("iTRAQ4plex (N-term)", "", TerminusN, 214, 144.102063)
	add("iTRAQ8plex (K)", "K", TerminusNone, 730, 304.205360)
	add("iTRAQ8plex (N-term)", "", TerminusN, 730, 304.205360)
	add("TMT6plex (K)", "K", TerminusNone, 737, 229.162932)
	add("TMT6plex (N-term)", "", TerminusN, 737, 229.162932)
	add("TMTpro (K)", "K", TerminusNone, 2016, 304.207146)
	add("TMTpro (N-term)", "", TerminusN, 2016, 304.207146)

	// Isotope labels
	label := func(name, aas string, term Terminus, id int, labels LabelAtoms, mass float64) {
		c.Add(StaticMod{
			Name:      name,
			AAs:       aas,
			Terminus:  term,
			UniModID:  id,
			Labels:    labels,
			MonoMass:  mass,
			LabelType: LabelTypeHeavy,
		})
	}

	label("Label:13C(6)", "KR", TerminusNone, 188, LabelC13, 0)
	label("Label:13C(6)15N(2)", "K", TerminusNone, 259, LabelC13|LabelN15, 0)
	label("Label:13C(6)15N(4)", "R", TerminusNone, 267, LabelC13|LabelN15, 0)
	label("Label:13C(9)15N(1)", "F", TerminusNone, 269, LabelC13|LabelN15, 0)
	label("Label:2H(4)", "K", TerminusNone, 481, 0, 4.025107)
	label("Label:18O(2) (C-term)", "", TerminusC, 193, 0, 4.008491)

	return c
}
