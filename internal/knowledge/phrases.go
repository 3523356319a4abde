package knowledge

// Pattern sets for link text, consent-banner language, and user-rights
// affordances. Languages covered: English, German, French, Spanish,
// Italian, plus Dutch and Portuguese where phrasing differs enough to
// matter.

// PolicyLinkText matches anchor text that points at a privacy policy.
func PolicyLinkText() PatternSet {
	return PatternSet{
		Concept: "privacy policy link text",
		Patterns: []Pattern{
			pat("en", `privacy\s*(policy|notice|statement)?`),
			pat("en", `data\s*protection`),
			pat("de", `datenschutz(erkl(ä|ae?)rung|hinweise?|bestimmungen)?`),
			pat("fr", `politique\s*de\s*confidentialit(é|e)`),
			pat("fr", `protection\s*des\s*donn(é|e)es`),
			pat("es", `pol(í|i)tica\s*de\s*privacidad`),
			pat("es", `protecci(ó|o)n\s*de\s*datos`),
			pat("it", `(politica|informativa)\s*(sulla\s*)?privacy`),
			pat("it", `protezione\s*dei\s*dati`),
			pat("nl", `privacybeleid`),
			pat("pt", `pol(í|i)tica\s*de\s*privacidade`),
		},
	}
}

// PolicyLinkHref matches href values that point at a privacy policy.
func PolicyLinkHref() PatternSet {
	return PatternSet{
		Concept: "privacy policy link href",
		Patterns: []Pattern{
			pat("en", `privacy`),
			pat("en", `data[-_]?protection`),
			pat("en", `gdpr`),
			pat("de", `datenschutz`),
			pat("fr", `confidentialite`),
			pat("es", `privacidad`),
			pat("it", `privacy`),
			pat("pt", `privacidade`),
		},
	}
}

// BannerPhrases matches the visible text of cookie consent banners.
func BannerPhrases() PatternSet {
	return PatternSet{
		Concept: "consent banner text",
		Patterns: []Pattern{
			pat("en", `(we|this\s*(web)?site)\s*use[s]?\s*cookies`),
			pat("en", `cookie\s*(consent|settings|preferences|notice)`),
			pat("en", `accept\s*(all\s*)?cookies`),
			pat("de", `(wir|diese\s*website)\s*(ver)?wende[nt]\s*cookies`),
			pat("de", `cookie[-\s]*(einstellungen|hinweis|zustimmung)`),
			pat("fr", `(nous\s*utilisons|ce\s*site\s*utilise)\s*des\s*cookies`),
			pat("fr", `param(è|e)tres\s*des\s*cookies`),
			pat("es", `(usamos|utilizamos|este\s*sitio\s*utiliza)\s*cookies`),
			pat("es", `configuraci(ó|o)n\s*de\s*cookies`),
			pat("it", `(usiamo|utilizziamo|questo\s*sito\s*utilizza)\s*(i\s*)?cookie`),
			pat("it", `impostazioni\s*(dei\s*)?cookie`),
			pat("nl", `(wij|deze\s*website)\s*gebruik(en|t)\s*cookies`),
			pat("pt", `(usamos|utilizamos|este\s*site\s*utiliza)\s*cookies`),
		},
	}
}

// AcceptWords matches labels of consent-granting controls.
func AcceptWords() PatternSet {
	return PatternSet{
		Concept: "consent accept label",
		Patterns: []Pattern{
			pat("en", `\b(accept|agree|allow|got\s*it|ok(ay)?)\b`),
			pat("de", `\b(akzeptieren|zustimmen|einverstanden|erlauben|alle\s*annehmen)\b`),
			pat("fr", `\b(accepter|autoriser|j'accepte|d'accord)\b`),
			pat("es", `\b(aceptar|permitir|de\s*acuerdo)\b`),
			pat("it", `\b(accett(a|are|o)|consenti|va\s*bene)\b`),
			pat("nl", `\b(accepteren|toestaan|akkoord)\b`),
			pat("pt", `\b(aceitar|permitir|concordo)\b`),
		},
	}
}

// RejectWords matches labels of consent-refusing controls.
func RejectWords() PatternSet {
	return PatternSet{
		Concept: "consent reject label",
		Patterns: []Pattern{
			pat("en", `\b(reject|decline|refuse|deny|only\s*(necessary|essential)|necessary\s*only)\b`),
			pat("de", `\b(ablehnen|verweigern|nur\s*(notwendige|erforderliche))\b`),
			pat("fr", `\b(refuser|rejeter|continuer\s*sans\s*accepter|uniquement\s*n(é|e)cessaires?)\b`),
			pat("es", `\b(rechazar|denegar|solo\s*(necesarias|esenciales))\b`),
			pat("it", `\b(rifiut(a|are|o)|nega|solo\s*(necessari|essenziali))\b`),
			pat("nl", `\b(weigeren|afwijzen|alleen\s*noodzakelijke)\b`),
			pat("pt", `\b(rejeitar|recusar|apenas\s*(necess(á|a)rios|essenciais))\b`),
		},
	}
}

// NecessaryLabels matches category labels that are exempt from the
// pre-ticked-checkbox rule.
func NecessaryLabels() PatternSet {
	return PatternSet{
		Concept: "necessary category label",
		Patterns: []Pattern{
			pat("en", `\b(necessary|essential|required|strictly)\b`),
			pat("de", `\b(notwendig|erforderlich|essenziell)\b`),
			pat("fr", `\b(n(é|e)cessaires?|essentiels?|requis)\b`),
			pat("es", `\b(necesari[ao]s?|esenciales?|requerid[ao]s?)\b`),
			pat("it", `\b(necessari[oa]?|essenziali?|richiest[oi])\b`),
		},
	}
}

// ClarityVocabulary matches plain-language consent vocabulary. A banner
// without any of these words is likely unclear about what it asks for.
func ClarityVocabulary() PatternSet {
	return PatternSet{
		Concept: "consent clarity vocabulary",
		Patterns: []Pattern{
			pat("en", `\b(cookie|consent|privacy|personal\s*data|tracking)\b`),
			pat("de", `\b(cookie|einwilligung|datenschutz|personenbezogene\s*daten)\b`),
			pat("fr", `\b(cookie|consentement|confidentialit(é|e)|donn(é|e)es\s*personnelles)\b`),
			pat("es", `\b(cookie|consentimiento|privacidad|datos\s*personales)\b`),
			pat("it", `\b(cookie|consenso|privacy|dati\s*personali)\b`),
		},
	}
}

// WithdrawalAffordance matches links or controls that let visitors revisit
// their consent decision.
func WithdrawalAffordance() PatternSet {
	return PatternSet{
		Concept: "consent withdrawal affordance",
		Patterns: []Pattern{
			pat("en", `(manage|change|withdraw|update)\s*(your\s*)?(cookie|consent|preference)`),
			pat("en", `cookie\s*(settings|preferences)`),
			pat("de", `(cookie[-\s]*einstellungen|einwilligung\s*(ändern|widerrufen))`),
			pat("fr", `(g(é|e)rer|modifier|retirer)\s*(mes|les|votre)?\s*(cookies|consentement|pr(é|e)f(é|e)rences)`),
			pat("es", `(gestionar|cambiar|retirar)\s*(las|mis|el)?\s*(cookies|consentimiento|preferencias)`),
			pat("it", `(gestis(ci|re)|modifica|revoca)\s*(i|le|il)?\s*(cookie|consenso|preferenze)`),
		},
	}
}

// AuthSignals matches login, signup, and registration affordances.
// Presence of any of these is the precondition for user-rights findings.
func AuthSignals() PatternSet {
	return PatternSet{
		Concept: "login or registration",
		Patterns: []Pattern{
			pat("en", `\b(log\s*in|sign\s*(in|up)|register|create\s*(an\s*)?account|my\s*account)\b`),
			pat("de", `\b(anmelden|einloggen|registrieren|konto\s*erstellen|mein\s*konto)\b`),
			pat("fr", `\b(se\s*connecter|connexion|s'inscrire|cr(é|e)er\s*un\s*compte|mon\s*compte)\b`),
			pat("es", `\b(iniciar\s*sesi(ó|o)n|reg(í|i)strate|registrarse|crear\s*(una\s*)?cuenta|mi\s*cuenta)\b`),
			pat("it", `\b(accedi|registrati|crea\s*(un\s*)?account|il\s*mio\s*account)\b`),
		},
	}
}

// ProfileSettings matches profile and account-settings affordances.
func ProfileSettings() PatternSet {
	return PatternSet{
		Concept: "profile settings",
		Patterns: []Pattern{
			pat("en", `(account|profile|privacy)\s*settings`),
			pat("en", `\b(edit|manage)\s*(your\s*)?profile\b`),
			pat("de", `(konto|profil)[-\s]*einstellungen`),
			pat("fr", `param(è|e)tres\s*(du\s*)?(compte|profil)`),
			pat("es", `(configuraci(ó|o)n|ajustes)\s*de\s*(la\s*)?(cuenta|perfil)`),
			pat("it", `impostazioni\s*(dell')?(account|profilo)`),
		},
	}
}

// DataExport matches data-download and portability affordances.
func DataExport() PatternSet {
	return PatternSet{
		Concept: "data export",
		Patterns: []Pattern{
			pat("en", `(download|export)\s*(your|my)?\s*(personal\s*)?data`),
			pat("en", `data\s*portability`),
			pat("de", `daten\s*(herunterladen|exportieren)`),
			pat("de", `daten(ü|ue)bertragbarkeit`),
			pat("fr", `(t(é|e)l(é|e)charger|exporter)\s*(mes|vos)?\s*donn(é|e)es`),
			pat("es", `(descargar|exportar)\s*(mis|tus|sus)?\s*datos`),
			pat("it", `(scarica|esporta)\s*(i\s*(tuoi|miei))?\s*dati`),
		},
	}
}

// AccountDeletion matches erasure and account-deletion affordances.
func AccountDeletion() PatternSet {
	return PatternSet{
		Concept: "account deletion",
		Patterns: []Pattern{
			pat("en", `(delete|close|remove)\s*(your|my)?\s*account`),
			pat("en", `right\s*to\s*(be\s*forgotten|erasure)`),
			pat("de", `konto\s*l(ö|oe?)schen`),
			pat("de", `recht\s*auf\s*l(ö|oe?)schung`),
			pat("fr", `supprimer\s*(mon|votre)?\s*compte`),
			pat("fr", `droit\s*(à|a)\s*l'effacement`),
			pat("es", `(eliminar|borrar)\s*(mi|tu|su)?\s*cuenta`),
			pat("es", `derecho\s*al\s*olvido`),
			pat("it", `(elimina|cancella)\s*(il\s*(mio|tuo))?\s*account`),
			pat("it", `diritto\s*alla\s*cancellazione`),
		},
	}
}

// DSARAffordance matches Data Subject Access Request submission paths.
func DSARAffordance() PatternSet {
	return PatternSet{
		Concept: "data subject access request",
		Patterns: []Pattern{
			pat("en", `(data\s*subject\s*(access\s*)?request|subject\s*access\s*request|dsar)`),
			pat("en", `request\s*(a\s*copy\s*of\s*)?(your|my)\s*data`),
			pat("de", `(auskunftsrecht|auskunftsanfrage|betroffenenanfrage)`),
			pat("fr", `demande\s*d'acc(è|e)s\s*(aux\s*donn(é|e)es)?`),
			pat("es", `solicitud\s*de\s*acceso\s*(a\s*(los\s*)?datos)?`),
			pat("it", `richiesta\s*di\s*accesso\s*(ai\s*dati)?`),
		},
	}
}
