package knowledge

// DisclosureGroup is one of the twelve disclosure elements a complete
// privacy policy must contain under GDPR Articles 13 and 14.
type DisclosureGroup struct {
	// ID is the stable identifier used in findings and reports.
	ID string

	// Name is the human-readable element name.
	Name string

	// Critical marks the five elements weighted at 10 points in the
	// completeness score; the remaining seven are worth 5 points each.
	Critical bool

	// Patterns detects the element in policy text.
	Patterns PatternSet
}

// PolicyDisclosureGroups returns the twelve required-disclosure pattern
// groups used by the policy content analyzer.
func PolicyDisclosureGroups() []DisclosureGroup {
	return []DisclosureGroup{
		{
			ID:       "controller_identity",
			Name:     "Controller identity and contact details",
			Critical: true,
			Patterns: PatternSet{
				Concept: "controller identity",
				Patterns: []Pattern{
					pat("en", `(data\s*controller|controller\s*of\s*(your\s*)?(personal\s*)?data|responsible\s*for\s*(the\s*)?processing)`),
					pat("en", `(we\s*are|operated\s*by|company\s*(name|details))\s*.{0,80}(gmbh|ltd|llc|inc|s\.a\.|b\.v\.)`),
					pat("de", `(verantwortliche[r]?\s*(im\s*sinne|f(ü|u)r\s*die\s*(daten)?verarbeitung)?|datenverantwortlich)`),
					pat("fr", `responsable\s*d[ue]\s*traitement`),
					pat("es", `responsable\s*del\s*tratamiento`),
					pat("it", `titolare\s*del\s*trattamento`),
				},
			},
		},
		{
			ID:       "dpo_contact",
			Name:     "Data Protection Officer contact",
			Critical: false,
			Patterns: PatternSet{
				Concept: "DPO contact",
				Patterns: []Pattern{
					pat("en", `(data\s*protection\s*officer|dpo\b)`),
					pat("de", `datenschutzbeauftragte[rn]?`),
					pat("fr", `d(é|e)l(é|e)gu(é|e)\s*(à|a)\s*la\s*protection\s*des\s*donn(é|e)es`),
					pat("es", `delegad[oa]\s*de\s*protecci(ó|o)n\s*de\s*datos`),
					pat("it", `responsabile\s*della\s*protezione\s*dei\s*dati`),
				},
			},
		},
		{
			ID:       "processing_purposes",
			Name:     "Purposes of processing",
			Critical: true,
			Patterns: PatternSet{
				Concept: "processing purposes",
				Patterns: []Pattern{
					pat("en", `purpose[s]?\s*(of|for)\s*(the\s*)?(data\s*)?processing`),
					pat("en", `(why\s*we\s*(collect|process|use)|we\s*use\s*your\s*(personal\s*)?data\s*(to|for))`),
					pat("de", `zweck[e]?\s*der\s*(daten)?verarbeitung`),
					pat("fr", `finalit(é|e)s?\s*d[ue]\s*traitement`),
					pat("es", `finalidad(es)?\s*del\s*tratamiento`),
					pat("it", `finalit(à|a)\s*del\s*trattamento`),
				},
			},
		},
		{
			ID:       "legal_basis",
			Name:     "Legal basis for processing",
			Critical: true,
			Patterns: PatternSet{
				Concept: "legal basis",
				Patterns: []Pattern{
					pat("en", `(legal\s*basis|lawful\s*basis|article\s*6|legitimate\s*interest|on\s*the\s*basis\s*of\s*(your\s*)?consent)`),
					pat("de", `(rechtsgrundlage|berechtigtes\s*interesse|art\.?\s*6\s*dsgvo)`),
					pat("fr", `(base\s*l(é|e)gale|int(é|e)r(ê|e)t\s*l(é|e)gitime)`),
					pat("es", `(base\s*(legal|jur(í|i)dica)|inter(é|e)s\s*leg(í|i)timo)`),
					pat("it", `(base\s*giuridica|legittimo\s*interesse)`),
				},
			},
		},
		{
			ID:       "data_categories",
			Name:     "Categories of personal data",
			Critical: true,
			Patterns: PatternSet{
				Concept: "data categories",
				Patterns: []Pattern{
					pat("en", `(categories|types|kinds)\s*of\s*(personal\s*)?(data|information)`),
					pat("en", `(data|information)\s*we\s*(collect|process|hold)`),
					pat("de", `(kategorien|arten)\s*(personenbezogener|von)\s*daten`),
					pat("fr", `cat(é|e)gories\s*de\s*donn(é|e)es`),
					pat("es", `categor(í|i)as\s*de\s*datos`),
					pat("it", `categorie\s*di\s*dati`),
				},
			},
		},
		{
			ID:       "retention",
			Name:     "Retention periods",
			Critical: false,
			Patterns: PatternSet{
				Concept: "retention periods",
				Patterns: []Pattern{
					pat("en", `(retention\s*(period|policy)|how\s*long\s*we\s*(keep|store|retain)|stored?\s*for\s*(as\s*long|no\s*longer))`),
					pat("de", `(speicherdauer|aufbewahrungsfrist|dauer\s*der\s*speicherung)`),
					pat("fr", `dur(é|e)e\s*de\s*conservation`),
					pat("es", `(plazo|per(í|i)odo)\s*de\s*conservaci(ó|o)n`),
					pat("it", `periodo\s*di\s*conservazione`),
				},
			},
		},
		{
			ID:       "recipients",
			Name:     "Recipients of personal data",
			Critical: false,
			Patterns: PatternSet{
				Concept: "data recipients",
				Patterns: []Pattern{
					pat("en", `(recipients?\s*of\s*(your\s*)?(personal\s*)?data|(share|disclose)\s*(your\s*)?(personal\s*)?(data|information)\s*with|third\s*part(y|ies))`),
					pat("de", `(empf(ä|ae?)nger\s*der\s*daten|weitergabe\s*(von|der)\s*daten|an\s*dritte)`),
					pat("fr", `(destinataires\s*des\s*donn(é|e)es|partage\s*des\s*donn(é|e)es)`),
					pat("es", `(destinatarios\s*de\s*(los\s*)?datos|compartimos\s*(sus|tus)?\s*datos)`),
					pat("it", `(destinatari\s*dei\s*dati|condivisione\s*dei\s*dati)`),
				},
			},
		},
		{
			ID:       "international_transfers",
			Name:     "International data transfers",
			Critical: false,
			Patterns: PatternSet{
				Concept: "international transfers",
				Patterns: []Pattern{
					pat("en", `(international\s*(data\s*)?transfers?|transfer(red)?\s*(outside|to\s*countries)|standard\s*contractual\s*clauses|adequacy\s*decision)`),
					pat("de", `((daten)(ü|ue)bermittlung\s*in\s*drittl(ä|ae?)nder|drittlandtransfer|standardvertragsklauseln)`),
					pat("fr", `transfert[s]?\s*(de\s*donn(é|e)es\s*)?(hors|vers)\s*`),
					pat("es", `transferencias?\s*internacionales`),
					pat("it", `trasferiment[oi]\s*(di\s*dati\s*)?(all'estero|internazionali)`),
				},
			},
		},
		{
			ID:       "user_rights",
			Name:     "Data subject rights",
			Critical: true,
			Patterns: PatternSet{
				Concept: "data subject rights",
				Patterns: []Pattern{
					pat("en", `(your\s*rights|right\s*(of|to)\s*(access|rectification|erasure|object|portability)|data\s*subject\s*rights)`),
					pat("de", `(ihre\s*rechte|betroffenenrechte|recht\s*auf\s*(auskunft|berichtigung|l(ö|oe?)schung))`),
					pat("fr", `(vos\s*droits|droit[s]?\s*(d'acc(è|e)s|de\s*rectification|(à|a)\s*l'effacement))`),
					pat("es", `(sus\s*derechos|derecho[s]?\s*de\s*(acceso|rectificaci(ó|o)n|supresi(ó|o)n))`),
					pat("it", `(i\s*tuoi\s*diritti|diritt[oi]\s*di\s*(accesso|rettifica|cancellazione))`),
				},
			},
		},
		{
			ID:       "complaint_right",
			Name:     "Right to lodge a complaint",
			Critical: false,
			Patterns: PatternSet{
				Concept: "complaint right",
				Patterns: []Pattern{
					pat("en", `(lodge\s*a\s*complaint|supervisory\s*authority|data\s*protection\s*authority)`),
					pat("de", `(beschwerde(recht)?|aufsichtsbeh(ö|oe?)rde)`),
					pat("fr", `(r(é|e)clamation|autorit(é|e)\s*de\s*contr(ô|o)le|cnil)`),
					pat("es", `(reclamaci(ó|o)n|autoridad\s*de\s*control|aepd)`),
					pat("it", `(reclamo|autorit(à|a)\s*di\s*controllo|garante)`),
				},
			},
		},
		{
			ID:       "data_source",
			Name:     "Source of the data",
			Critical: false,
			Patterns: PatternSet{
				Concept: "data source",
				Patterns: []Pattern{
					pat("en", `(source\s*of\s*(the\s*|your\s*)?(personal\s*)?data|where\s*we\s*(get|obtain|collect)\s*(your\s*)?data\s*from|collected?\s*directly\s*from\s*you)`),
					pat("de", `(herkunft\s*der\s*daten|woher\s*wir\s*(ihre\s*)?daten)`),
					pat("fr", `(source|origine)\s*des\s*donn(é|e)es`),
					pat("es", `(origen|procedencia)\s*de\s*los\s*datos`),
					pat("it", `(fonte|origine)\s*dei\s*dati`),
				},
			},
		},
		{
			ID:       "automated_decisions",
			Name:     "Automated decision-making disclosure",
			Critical: false,
			Patterns: AutomatedDisclosure(),
		},
	}
}

// AgeVerification matches age-verification and parental-consent language
// (GDPR Article 8).
func AgeVerification() PatternSet {
	return PatternSet{
		Concept: "age verification",
		Patterns: []Pattern{
			pat("en", `(age\s*verification|parental\s*consent|(under|over)\s*(the\s*age\s*of\s*)?1[3-8]\b|minimum\s*age)`),
			pat("de", `(altersverifikation|alterspr(ü|ue?)fung|einwilligung\s*der\s*eltern|mindestalter)`),
			pat("fr", `(v(é|e)rification\s*de\s*l'(â|a)ge|consentement\s*parental|(â|a)ge\s*minimum)`),
			pat("es", `(verificaci(ó|o)n\s*de\s*edad|consentimiento\s*(de\s*los\s*)?padres|edad\s*m(í|i)nima)`),
			pat("it", `(verifica\s*dell'et(à|a)|consenso\s*dei\s*genitori|et(à|a)\s*minima)`),
		},
	}
}

// SensitiveData matches special-category data vocabulary (GDPR Article 9).
func SensitiveData() PatternSet {
	return PatternSet{
		Concept: "special-category data",
		Patterns: []Pattern{
			pat("en", `(special\s*categor(y|ies)|sensitive\s*(personal\s*)?data|health\s*data|biometric|genetic\s*data|racial\s*or\s*ethnic|religious\s*beliefs?|sexual\s*orientation|trade\s*union)`),
			pat("de", `(besondere\s*kategorien|sensible\s*daten|gesundheitsdaten|biometrisch|genetische\s*daten)`),
			pat("fr", `(cat(é|e)gories\s*particuli(è|e)res|donn(é|e)es\s*sensibles|donn(é|e)es\s*de\s*sant(é|e)|biom(é|e)trique)`),
			pat("es", `(categor(í|i)as\s*especiales|datos\s*sensibles|datos\s*de\s*salud|biom(é|e)tric)`),
			pat("it", `(categorie\s*particolari|dati\s*sensibili|dati\s*sanitari|biometric)`),
		},
	}
}

// ExplicitConsent matches explicit-consent language required alongside
// special-category data processing.
func ExplicitConsent() PatternSet {
	return PatternSet{
		Concept: "explicit consent",
		Patterns: []Pattern{
			pat("en", `(explicit\s*consent|expressly\s*consent|your\s*express\s*(ed)?\s*consent)`),
			pat("de", `ausdr(ü|ue?)ckliche[n]?\s*einwilligung`),
			pat("fr", `consentement\s*(explicite|expr(è|e)s)`),
			pat("es", `consentimiento\s*expl(í|i)cito`),
			pat("it", `consenso\s*esplicito`),
		},
	}
}

// AutomatedDecision matches automated decision-making and profiling
// vocabulary (GDPR Article 22).
func AutomatedDecision() PatternSet {
	return PatternSet{
		Concept: "automated decision-making",
		Patterns: []Pattern{
			pat("en", `(automated\s*(decision|processing)|profiling|algorithmic\s*decision)`),
			pat("de", `(automatisierte\s*entscheidung|profiling)`),
			pat("fr", `(d(é|e)cision\s*automatis(é|e)e|profilage)`),
			pat("es", `(decisi(ó|o)n(es)?\s*automatizada[s]?|elaboraci(ó|o)n\s*de\s*perfiles)`),
			pat("it", `(decision[ei]\s*automatizzat[ea]|profilazione)`),
		},
	}
}

// AutomatedDisclosure matches the disclosure language that must accompany
// automated decision-making: its logic, significance, and the right to
// human intervention.
func AutomatedDisclosure() PatternSet {
	return PatternSet{
		Concept: "automated decision disclosure",
		Patterns: []Pattern{
			pat("en", `(logic\s*involved|human\s*(intervention|review)|right\s*(not\s*)?to\s*be\s*subject\s*to\s*(a\s*)?(solely\s*)?automated|contest\s*the\s*decision)`),
			pat("de", `(menschliche[sn]?\s*eingreifen|nicht\s*ausschlie(ß|ss)lich\s*automatisiert|involvierte\s*logik)`),
			pat("fr", `(intervention\s*humaine|logique\s*sous-jacente|ne\s*pas\s*faire\s*l'objet\s*d'une\s*d(é|e)cision)`),
			pat("es", `(intervenci(ó|o)n\s*humana|l(ó|o)gica\s*aplicada)`),
			pat("it", `(intervento\s*umano|logica\s*utilizzata)`),
		},
	}
}

// LegalBasis matches legal-basis vocabulary anywhere on a page
// (GDPR Article 6). Shared by the policy analyzer and the page-level
// compliance sweep.
func LegalBasis() PatternSet {
	return PatternSet{
		Concept: "legal basis vocabulary",
		Patterns: []Pattern{
			pat("en", `(legal\s*basis|lawful\s*basis|legitimate\s*interest|article\s*6|contractual\s*necessity|legal\s*obligation)`),
			pat("de", `(rechtsgrundlage|berechtigtes\s*interesse|art\.?\s*6|vertragserf(ü|ue?)llung|rechtliche\s*verpflichtung)`),
			pat("fr", `(base\s*l(é|e)gale|int(é|e)r(ê|e)t\s*l(é|e)gitime|obligation\s*l(é|e)gale)`),
			pat("es", `(base\s*(legal|jur(í|i)dica)|inter(é|e)s\s*leg(í|i)timo|obligaci(ó|o)n\s*legal)`),
			pat("it", `(base\s*giuridica|legittimo\s*interesse|obbligo\s*legale)`),
		},
	}
}
