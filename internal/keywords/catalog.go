package keywords

import "github.com/caveat-dev/caveat/internal/models"

// catalog returns the built-in keyword catalog, one entry list per risk
// category.
func catalog() map[models.RiskCategory][]Entry {
	return map[models.RiskCategory][]Entry{
		models.CategoryFinancial:         financialKeywords(),
		models.CategoryLegalLiability:    liabilityKeywords(),
		models.CategoryTermination:       terminationKeywords(),
		models.CategoryIntellectualProp:  ipKeywords(),
		models.CategoryConfidentiality:   confidentialityKeywords(),
		models.CategoryDisputeResolution: disputeKeywords(),
		models.CategoryCompliance:        complianceKeywords(),
		models.CategoryOperational:       operationalKeywords(),
	}
}

func financialKeywords() []Entry {
	return []Entry{
		// Unlimited exposure
		{Pattern: "unlimited liability", Weight: 3.0, Description: "No cap on financial exposure"},
		{Pattern: "unlimited financial", Weight: 3.0, Description: "No cap on financial exposure"},
		{Pattern: "without limitation", Weight: 2.5, Description: "Potentially unlimited scope"},
		{Pattern: "no cap", Weight: 2.5, Description: "Missing liability cap"},
		{Pattern: "no limit", Weight: 2.5, Description: "Missing limit on obligations"},
		{Pattern: "uncapped", Weight: 2.5, Description: "No ceiling on amounts"},

		// Hidden fees
		{Pattern: "additional fees", Weight: 1.5, Description: "May indicate hidden costs"},
		{Pattern: "processing fee", Weight: 1.0, Description: "Additional processing costs"},
		{Pattern: "administrative fee", Weight: 1.0, Description: "Administrative charges"},
		{Pattern: "service charge", Weight: 1.0, Description: "Extra service charges"},
		{Pattern: "convenience fee", Weight: 1.5, Description: "Hidden convenience charges"},
		{Pattern: "handling fee", Weight: 1.0, Description: "Extra handling costs"},
		{Pattern: "setup fee", Weight: 1.0, Description: "Initial setup costs"},
		{Pattern: "maintenance fee", Weight: 1.0, Description: "Ongoing maintenance costs"},

		// Non-refundable payments
		{Pattern: "non-refundable", Weight: 2.0, Description: "Cannot recover payments"},
		{Pattern: "nonrefundable", Weight: 2.0, Description: "Cannot recover payments"},
		{Pattern: "no refund", Weight: 2.5, Description: "Refunds prohibited"},
		{Pattern: "refund shall not", Weight: 2.0, Description: "Refund restrictions"},
		{Pattern: "forfeiture", Weight: 2.0, Description: "Loss of payments/deposits"},
		{Pattern: "forfeited", Weight: 2.0, Description: "Loss of payments/deposits"},

		// Price increases
		{Pattern: "sole discretion to adjust", Weight: 2.5, Description: "Unilateral price changes"},
		{Pattern: "adjust fees at any time", Weight: 2.5, Description: "Unpredictable fee changes"},
		{Pattern: "price increase", Weight: 1.5, Description: "Potential cost escalation"},
		{Pattern: "automatically increase", Weight: 2.0, Description: "Automatic cost increases"},
		{Pattern: "automatically renew at increased", Weight: 2.5, Description: "Auto-renewal with price hike"},
		{Pattern: `increase\s+(?:by|of)\s+\d+%`, Weight: 1.5, Description: "Percentage increase specified", IsRegex: true},
		{Pattern: "annual increase", Weight: 1.5, Description: "Yearly price escalation"},
		{Pattern: "escalation clause", Weight: 1.5, Description: "Price escalation provision"},
		{Pattern: "cost of living adjustment", Weight: 1.0, Description: "COLA increases"},
		{Pattern: "CPI adjustment", Weight: 1.0, Description: "Inflation-based increases"},

		// Penalties
		{Pattern: "penalty", Weight: 1.5, Description: "Financial penalties"},
		{Pattern: "penalties compound", Weight: 2.5, Description: "Compounding penalties"},
		{Pattern: "late fee", Weight: 1.5, Description: "Late payment penalties"},
		{Pattern: "interest rate of", Weight: 1.5, Description: "Interest charges"},
		{Pattern: `interest\s+(?:rate|of)\s+\d+%`, Weight: 1.5, Description: "Interest rate specified", IsRegex: true},
		{Pattern: "default rate", Weight: 2.0, Description: "Default interest rate"},
		{Pattern: "liquidated damages", Weight: 1.5, Description: "Preset damage amounts"},
		{Pattern: "acceleration clause", Weight: 2.0, Description: "Payment acceleration on default"},

		// Payment terms
		{Pattern: "payment in advance", Weight: 1.0, Description: "Prepayment required"},
		{Pattern: "upfront payment", Weight: 1.0, Description: "Advance payment required"},
		{Pattern: "upon signing", Weight: 1.0, Description: "Payment at contract signing"},
		{Pattern: "net-60", Weight: 1.0, Description: "60-day payment terms"},
		{Pattern: "net-90", Weight: 1.5, Description: "90-day payment terms"},
		{Pattern: "upon receipt", Weight: 1.0, Description: "Immediate payment required"},
		{Pattern: "within 7 days", Weight: 1.0, Description: "Short payment window"},

		// Currency exposure
		{Pattern: "currency fluctuation", Weight: 1.5, Description: "Currency exchange risk"},
		{Pattern: "exchange rate", Weight: 1.0, Description: "Currency exchange exposure"},
		{Pattern: "bears the exchange risk", Weight: 2.0, Description: "One party bears FX risk"},

		// Deposits and collateral
		{Pattern: "security deposit", Weight: 1.0, Description: "Deposit required"},
		{Pattern: "performance bond", Weight: 1.5, Description: "Bond requirement"},
		{Pattern: "letter of credit", Weight: 1.5, Description: "LOC requirement"},
		{Pattern: "escrow", Weight: 1.0, Description: "Escrow arrangement"},

		// Tax burden
		{Pattern: "responsible for all taxes", Weight: 1.5, Description: "Full tax liability"},
		{Pattern: "plus applicable taxes", Weight: 1.0, Description: "Additional tax costs"},
		{Pattern: "exclusive of taxes", Weight: 1.0, Description: "Taxes not included"},
		{Pattern: "gross up", Weight: 1.5, Description: "Tax gross-up obligation"},

		// Insurance
		{Pattern: "maintain insurance", Weight: 1.0, Description: "Insurance requirement"},
		{Pattern: `insurance\s+(?:of|coverage)\s+\$?\d+`, Weight: 1.5, Description: "Specific insurance amounts", IsRegex: true},
		{Pattern: "name as additional insured", Weight: 1.0, Description: "Additional insured requirement"},
	}
}

func liabilityKeywords() []Entry {
	return []Entry{
		// Indemnification
		{Pattern: "shall indemnify", Weight: 2.0, Description: "Indemnification obligation"},
		{Pattern: "will indemnify", Weight: 2.0, Description: "Indemnification obligation"},
		{Pattern: "agrees to indemnify", Weight: 2.0, Description: "Indemnification agreement"},
		{Pattern: "indemnify and hold harmless", Weight: 2.5, Description: "Strong indemnity clause"},
		{Pattern: "defend, indemnify", Weight: 2.5, Description: "Defense and indemnity obligation"},
		{Pattern: "unlimited indemnification", Weight: 3.0, Description: "No cap on indemnity"},
		{Pattern: "broad indemnification", Weight: 2.5, Description: "Wide indemnity scope"},
		{Pattern: "indemnify for any and all", Weight: 2.5, Description: "Broad indemnity scope"},

		// Hold harmless
		{Pattern: "hold harmless", Weight: 2.0, Description: "Hold harmless provision"},
		{Pattern: "save harmless", Weight: 2.0, Description: "Save harmless provision"},
		{Pattern: "harmless from any", Weight: 2.0, Description: "Broad hold harmless"},

		// Waivers and releases
		{Pattern: "waive all claims", Weight: 3.0, Description: "Waiver of all claims"},
		{Pattern: "waives any right", Weight: 2.5, Description: "Rights waiver"},
		{Pattern: "waives the right to", Weight: 2.5, Description: "Specific rights waiver"},
		{Pattern: "release from liability", Weight: 2.5, Description: "Liability release"},
		{Pattern: "releases from all liability", Weight: 3.0, Description: "Complete liability release"},
		{Pattern: "releases and discharges", Weight: 2.5, Description: "Release and discharge"},
		{Pattern: "forever release", Weight: 3.0, Description: "Permanent release"},
		{Pattern: "knowingly and voluntarily waive", Weight: 2.5, Description: "Voluntary waiver language"},

		// Liability limitations
		{Pattern: "to the fullest extent permitted by law", Weight: 2.0, Description: "Maximum legal liability"},
		{Pattern: "to the maximum extent", Weight: 2.0, Description: "Maximum extent language"},
		{Pattern: "in no event shall", Weight: 1.5, Description: "Liability limitation language"},
		{Pattern: "under no circumstances", Weight: 2.0, Description: "Absolute limitation"},
		{Pattern: "shall not be liable for", Weight: 1.5, Description: "Liability exclusion"},
		{Pattern: "excludes all liability", Weight: 2.5, Description: "Complete liability exclusion"},
		{Pattern: "disclaims all liability", Weight: 2.5, Description: "Complete liability disclaimer"},

		// Damages
		{Pattern: "consequential damages", Weight: 1.5, Description: "Consequential damages mention"},
		{Pattern: "incidental damages", Weight: 1.5, Description: "Incidental damages mention"},
		{Pattern: "special damages", Weight: 1.5, Description: "Special damages mention"},
		{Pattern: "punitive damages", Weight: 1.5, Description: "Punitive damages mention"},
		{Pattern: "indirect damages", Weight: 1.5, Description: "Indirect damages mention"},
		{Pattern: "excludes consequential", Weight: 1.0, Description: "Excludes consequential (may be standard)"},
		{Pattern: "including but not limited to lost profits", Weight: 2.0, Description: "Broad damages inclusion"},

		// Warranty disclaimers
		{Pattern: "as is", Weight: 1.5, Description: "As-is sale/service"},
		{Pattern: "as-is", Weight: 1.5, Description: "As-is sale/service"},
		{Pattern: "with all faults", Weight: 2.0, Description: "No warranty provision"},
		{Pattern: "without warranty", Weight: 2.0, Description: "No warranty"},
		{Pattern: "no warranties", Weight: 2.0, Description: "No warranties given"},
		{Pattern: "disclaims all warranties", Weight: 2.5, Description: "Complete warranty disclaimer"},
		{Pattern: "warranty of merchantability", Weight: 1.0, Description: "UCC warranty mention"},
		{Pattern: "warranty of fitness", Weight: 1.0, Description: "Fitness warranty mention"},

		// Joint and personal liability
		{Pattern: "joint and several", Weight: 2.5, Description: "Joint and several liability"},
		{Pattern: "jointly and severally", Weight: 2.5, Description: "Joint and several liability"},
		{Pattern: "personal guarantee", Weight: 2.5, Description: "Personal guarantee required"},
		{Pattern: "personally liable", Weight: 2.5, Description: "Personal liability exposure"},
		{Pattern: "guarantor", Weight: 2.0, Description: "Guarantor obligation"},

		// Fault standards
		{Pattern: "gross negligence", Weight: 1.5, Description: "Gross negligence standard"},
		{Pattern: "willful misconduct", Weight: 1.5, Description: "Willful misconduct standard"},
		{Pattern: "even if advised of", Weight: 2.0, Description: "Liability even if warned"},
		{Pattern: "regardless of negligence", Weight: 2.5, Description: "Strict liability standard"},

		// Third party claims
		{Pattern: "third party claims", Weight: 1.5, Description: "Third party claim exposure"},
		{Pattern: "any claims by third parties", Weight: 2.0, Description: "Third party indemnity"},
		{Pattern: "third party losses", Weight: 1.5, Description: "Third party loss exposure"},
	}
}

func terminationKeywords() []Entry {
	return []Entry{
		// Automatic renewal
		{Pattern: "automatically renews", Weight: 2.0, Description: "Auto-renewal clause"},
		{Pattern: "automatically renew", Weight: 2.0, Description: "Auto-renewal clause"},
		{Pattern: "auto-renewal", Weight: 2.0, Description: "Auto-renewal clause"},
		{Pattern: "auto renewal", Weight: 2.0, Description: "Auto-renewal clause"},
		{Pattern: "renew automatically", Weight: 2.0, Description: "Auto-renewal clause"},
		{Pattern: "automatically extended", Weight: 2.0, Description: "Auto-extension"},
		{Pattern: "unless terminated", Weight: 1.5, Description: "Conditional termination"},
		{Pattern: "unless cancelled", Weight: 1.5, Description: "Conditional cancellation"},
		{Pattern: "evergreen", Weight: 2.0, Description: "Evergreen contract"},
		{Pattern: "successive renewal", Weight: 1.5, Description: "Successive renewals"},

		// Termination restrictions
		{Pattern: "may not terminate", Weight: 2.5, Description: "Cannot terminate"},
		{Pattern: "cannot terminate", Weight: 2.5, Description: "Cannot terminate"},
		{Pattern: "shall not terminate", Weight: 2.5, Description: "Cannot terminate"},
		{Pattern: "no right to terminate", Weight: 3.0, Description: "No termination right"},
		{Pattern: "irrevocable", Weight: 3.0, Description: "Cannot be revoked"},
		{Pattern: "non-cancelable", Weight: 2.5, Description: "Cannot cancel"},
		{Pattern: "non-cancellable", Weight: 2.5, Description: "Cannot cancel"},
		{Pattern: "binding and irrevocable", Weight: 3.0, Description: "Binding and irrevocable"},

		// Termination fees
		{Pattern: "termination fee", Weight: 2.0, Description: "Termination fee required"},
		{Pattern: "early termination fee", Weight: 2.0, Description: "Early termination penalty"},
		{Pattern: "cancellation fee", Weight: 2.0, Description: "Cancellation fee"},
		{Pattern: "termination penalty", Weight: 2.5, Description: "Termination penalty"},
		{Pattern: "break fee", Weight: 2.0, Description: "Break fee"},
		{Pattern: "liquidated damages upon termination", Weight: 2.5, Description: "Preset termination damages"},
		{Pattern: "termination fee equal to", Weight: 2.5, Description: "Specific termination fee"},
		{Pattern: "remaining term", Weight: 2.0, Description: "Payment for remaining term"},
		{Pattern: "pay for the remainder", Weight: 2.5, Description: "Full term payment obligation"},

		// Notice periods
		{Pattern: `\d+\s*days?['"]?\s+(?:prior\s+)?(?:written\s+)?notice`, Weight: 1.0, Description: "Notice period specified", IsRegex: true},
		{Pattern: "30 days notice", Weight: 1.0, Description: "30-day notice period"},
		{Pattern: "60 days notice", Weight: 1.5, Description: "60-day notice period"},
		{Pattern: "90 days notice", Weight: 2.0, Description: "90-day notice period"},
		{Pattern: "180 days notice", Weight: 2.5, Description: "180-day notice period"},
		{Pattern: "one year notice", Weight: 3.0, Description: "One year notice period"},
		{Pattern: "12 months notice", Weight: 3.0, Description: "12-month notice period"},

		// Lock-in periods
		{Pattern: "minimum term", Weight: 1.5, Description: "Minimum term commitment"},
		{Pattern: "initial term", Weight: 1.0, Description: "Initial term period"},
		{Pattern: "lock-in period", Weight: 2.0, Description: "Lock-in period"},
		{Pattern: "commitment period", Weight: 1.5, Description: "Commitment period"},
		{Pattern: "binding for", Weight: 1.5, Description: "Binding duration"},

		// Perpetual obligations
		{Pattern: "perpetual", Weight: 2.5, Description: "Perpetual/forever term"},
		{Pattern: "in perpetuity", Weight: 3.0, Description: "Forever term"},
		{Pattern: "survives termination indefinitely", Weight: 3.0, Description: "Indefinite survival"},
		{Pattern: "survives termination", Weight: 1.5, Description: "Survival clause"},
		{Pattern: "survive the termination", Weight: 1.5, Description: "Survival clause"},
		{Pattern: "shall survive", Weight: 1.0, Description: "Survival provision"},
		{Pattern: "continuing obligations", Weight: 1.5, Description: "Ongoing obligations post-termination"},

		// For cause vs convenience
		{Pattern: "terminate for convenience", Weight: 0.5, Description: "Termination for convenience (good)"},
		{Pattern: "terminate without cause", Weight: 0.5, Description: "Termination without cause (good)"},
		{Pattern: "for cause only", Weight: 2.0, Description: "Only for-cause termination"},
		{Pattern: "material breach only", Weight: 2.0, Description: "Only material breach allows termination"},
		{Pattern: "only upon material breach", Weight: 2.0, Description: "Restrictive termination"},

		// Cure periods
		{Pattern: "cure period", Weight: 1.0, Description: "Cure period provided"},
		{Pattern: "opportunity to cure", Weight: 1.0, Description: "Cure opportunity"},
		{Pattern: `\d+\s*days?\s+to\s+cure`, Weight: 1.0, Description: "Specific cure period", IsRegex: true},
		{Pattern: "no cure period", Weight: 2.5, Description: "No opportunity to cure"},
		{Pattern: "immediate termination", Weight: 2.0, Description: "Immediate termination right"},
	}
}

func ipKeywords() []Entry {
	return []Entry{
		// IP transfer
		{Pattern: "assigns all rights", Weight: 2.5, Description: "Full IP assignment"},
		{Pattern: "assign all rights, title", Weight: 3.0, Description: "Complete IP transfer"},
		{Pattern: "assigns all right, title, and interest", Weight: 3.0, Description: "Full IP transfer"},
		{Pattern: "transfer of ownership", Weight: 2.5, Description: "Ownership transfer"},
		{Pattern: "transfers all intellectual property", Weight: 3.0, Description: "IP transfer"},
		{Pattern: "hereby assigns", Weight: 2.0, Description: "IP assignment"},
		{Pattern: "irrevocably assigns", Weight: 3.0, Description: "Irrevocable IP assignment"},

		// Work for hire
		{Pattern: "work made for hire", Weight: 2.5, Description: "Work for hire doctrine"},
		{Pattern: "work for hire", Weight: 2.5, Description: "Work for hire doctrine"},
		{Pattern: "works for hire", Weight: 2.5, Description: "Work for hire doctrine"},
		{Pattern: "deemed work for hire", Weight: 2.5, Description: "Work for hire classification"},
		{Pattern: "shall be considered work for hire", Weight: 2.5, Description: "Work for hire designation"},

		// License scope
		{Pattern: "exclusive license", Weight: 2.0, Description: "Exclusive license grant"},
		{Pattern: "exclusive, perpetual", Weight: 3.0, Description: "Perpetual exclusive license"},
		{Pattern: "exclusive, worldwide", Weight: 2.5, Description: "Worldwide exclusive license"},
		{Pattern: "exclusive, perpetual, worldwide", Weight: 3.0, Description: "Broadest exclusive license"},
		{Pattern: "exclusive, irrevocable", Weight: 3.0, Description: "Irrevocable exclusive license"},
		{Pattern: "non-exclusive license", Weight: 0.5, Description: "Non-exclusive license (better)"},
		{Pattern: "sublicensable", Weight: 1.5, Description: "Can be sublicensed"},
		{Pattern: "right to sublicense", Weight: 1.5, Description: "Sublicense rights"},
		{Pattern: "transferable license", Weight: 1.5, Description: "Transferable license"},

		// Future rights
		{Pattern: "future developments", Weight: 2.5, Description: "Future IP included"},
		{Pattern: "including future", Weight: 2.5, Description: "Future work included"},
		{Pattern: "future improvements", Weight: 2.0, Description: "Future improvements included"},
		{Pattern: "derivatives and modifications", Weight: 2.0, Description: "Derivative works included"},
		{Pattern: "all derivative works", Weight: 2.5, Description: "All derivatives included"},
		{Pattern: "any improvements", Weight: 2.0, Description: "Improvements included"},
		{Pattern: "enhancements and modifications", Weight: 1.5, Description: "Enhancements included"},

		// Moral rights
		{Pattern: "waives moral rights", Weight: 2.5, Description: "Moral rights waiver"},
		{Pattern: "waive moral rights", Weight: 2.5, Description: "Moral rights waiver"},
		{Pattern: "moral rights waiver", Weight: 2.5, Description: "Moral rights waiver"},
		{Pattern: "waives all moral rights", Weight: 3.0, Description: "Complete moral rights waiver"},
		{Pattern: "waives any moral rights", Weight: 2.5, Description: "Moral rights waiver"},

		// Patent and trademark
		{Pattern: "patent assignment", Weight: 2.0, Description: "Patent assignment"},
		{Pattern: "assigns all patents", Weight: 2.5, Description: "All patents assigned"},
		{Pattern: "trademark assignment", Weight: 2.0, Description: "Trademark assignment"},
		{Pattern: "assigns all trademarks", Weight: 2.5, Description: "All trademarks assigned"},
		{Pattern: "copyright assignment", Weight: 2.0, Description: "Copyright assignment"},

		// Background IP
		{Pattern: "background IP", Weight: 1.0, Description: "Background IP mentioned"},
		{Pattern: "pre-existing IP", Weight: 1.0, Description: "Pre-existing IP mentioned"},
		{Pattern: "retains ownership of background", Weight: 0.5, Description: "Retains background IP (good)"},
		{Pattern: "license to background IP", Weight: 1.5, Description: "Background IP licensed"},

		// Source code
		{Pattern: "source code", Weight: 1.0, Description: "Source code mentioned"},
		{Pattern: "source code escrow", Weight: 1.0, Description: "Source code escrow"},
		{Pattern: "deliver source code", Weight: 2.0, Description: "Source code delivery required"},
		{Pattern: "access to source code", Weight: 2.0, Description: "Source code access"},

		// Reverse engineering
		{Pattern: "reverse engineer", Weight: 1.5, Description: "Reverse engineering mention"},
		{Pattern: "decompile", Weight: 1.5, Description: "Decompilation mention"},
		{Pattern: "disassemble", Weight: 1.5, Description: "Disassembly mention"},
	}
}

func confidentialityKeywords() []Entry {
	return []Entry{
		// Duration
		{Pattern: "perpetual confidentiality", Weight: 3.0, Description: "Forever confidentiality"},
		{Pattern: "indefinite confidentiality", Weight: 3.0, Description: "Indefinite confidentiality"},
		{Pattern: "confidential in perpetuity", Weight: 3.0, Description: "Perpetual confidentiality"},
		{Pattern: `confidential(?:ity)?\s+(?:for|period\s+of)\s+\d+\s+years?`, Weight: 1.0, Description: "Time-limited confidentiality", IsRegex: true},
		{Pattern: "10 years", Weight: 2.0, Description: "Long confidentiality period"},
		{Pattern: "15 years", Weight: 2.5, Description: "Very long confidentiality"},
		{Pattern: "20 years", Weight: 3.0, Description: "Extremely long confidentiality"},

		// Scope
		{Pattern: "all information", Weight: 2.0, Description: "Broad confidentiality scope"},
		{Pattern: "any information", Weight: 2.0, Description: "Broad confidentiality scope"},
		{Pattern: "all materials", Weight: 1.5, Description: "Broad materials scope"},
		{Pattern: "any and all information", Weight: 2.5, Description: "Very broad scope"},
		{Pattern: "regardless of whether marked", Weight: 2.0, Description: "Unmarked info included"},
		{Pattern: "whether or not marked confidential", Weight: 2.0, Description: "Unmarked info included"},

		// Third party sharing
		{Pattern: "may share with affiliates", Weight: 1.5, Description: "Affiliate sharing permitted"},
		{Pattern: "share with affiliates without notice", Weight: 2.5, Description: "Unnotified affiliate sharing"},
		{Pattern: "share with third parties", Weight: 2.0, Description: "Third party sharing permitted"},
		{Pattern: "disclose to subcontractors", Weight: 1.5, Description: "Subcontractor disclosure"},
		{Pattern: "without prior consent", Weight: 2.0, Description: "Disclosure without consent"},
		{Pattern: "in its sole discretion", Weight: 2.5, Description: "Discretionary disclosure"},
		{Pattern: "sole discretion to disclose", Weight: 2.5, Description: "Discretionary disclosure"},

		// Return and destruction
		{Pattern: "no obligation to return", Weight: 2.5, Description: "No return obligation"},
		{Pattern: "not required to return", Weight: 2.5, Description: "No return requirement"},
		{Pattern: "need not return", Weight: 2.0, Description: "No return requirement"},
		{Pattern: "may retain copies", Weight: 1.5, Description: "May keep copies"},
		{Pattern: "retain archival copies", Weight: 1.0, Description: "Archival copies permitted"},
		{Pattern: "return or destroy", Weight: 0.5, Description: "Return/destroy obligation (good)"},
		{Pattern: "certify destruction", Weight: 0.5, Description: "Destruction certification (good)"},

		// Data protection
		{Pattern: "waives data protection", Weight: 3.0, Description: "Data protection waiver"},
		{Pattern: "waive data protection rights", Weight: 3.0, Description: "Data protection waiver"},
		{Pattern: "no liability for data", Weight: 2.5, Description: "No data liability"},
		{Pattern: "not responsible for data security", Weight: 2.5, Description: "No security responsibility"},
		{Pattern: "data breach", Weight: 1.5, Description: "Data breach mentioned"},
		{Pattern: "security incident", Weight: 1.5, Description: "Security incident mentioned"},

		// One-sided obligations
		{Pattern: "your confidential information", Weight: 1.0, Description: "One-way confidentiality check"},
		{Pattern: "receiving party shall", Weight: 1.5, Description: "One-sided obligation"},
		{Pattern: "disclosing party may", Weight: 1.5, Description: "One-sided rights"},
		{Pattern: "mutual confidentiality", Weight: 0.5, Description: "Mutual obligations (good)"},
		{Pattern: "reciprocal obligations", Weight: 0.5, Description: "Reciprocal (good)"},

		// Standard exceptions
		{Pattern: "publicly available", Weight: 0.5, Description: "Public info exception (standard)"},
		{Pattern: "independently developed", Weight: 0.5, Description: "Independent development exception"},
		{Pattern: "rightfully received", Weight: 0.5, Description: "Prior receipt exception"},
		{Pattern: "required by law", Weight: 0.5, Description: "Legal requirement exception"},
		{Pattern: "court order", Weight: 0.5, Description: "Court order exception"},
	}
}

func disputeKeywords() []Entry {
	return []Entry{
		// Arbitration
		{Pattern: "binding arbitration", Weight: 2.0, Description: "Mandatory arbitration"},
		{Pattern: "mandatory arbitration", Weight: 2.0, Description: "Mandatory arbitration"},
		{Pattern: "shall be resolved through arbitration", Weight: 1.5, Description: "Arbitration required"},
		{Pattern: "submit to arbitration", Weight: 1.5, Description: "Arbitration submission"},
		{Pattern: "AAA arbitration", Weight: 1.5, Description: "AAA arbitration rules"},
		{Pattern: "JAMS arbitration", Weight: 1.5, Description: "JAMS arbitration rules"},
		{Pattern: "ICC arbitration", Weight: 1.5, Description: "ICC arbitration rules"},
		{Pattern: "final and binding", Weight: 2.0, Description: "Final binding decision"},
		{Pattern: "arbitration shall be final", Weight: 2.0, Description: "Final arbitration"},
		{Pattern: "no appeal", Weight: 2.5, Description: "No appeal rights"},

		// Jurisdiction
		{Pattern: "exclusive jurisdiction", Weight: 1.5, Description: "Exclusive jurisdiction clause"},
		{Pattern: "exclusive jurisdiction in", Weight: 2.0, Description: "Specific exclusive jurisdiction"},
		{Pattern: "courts of", Weight: 1.0, Description: "Court jurisdiction specified"},
		{Pattern: "shall be brought in", Weight: 1.5, Description: "Venue specified"},
		{Pattern: "only in the courts", Weight: 2.0, Description: "Single court option"},
		{Pattern: "irrevocably submits", Weight: 2.0, Description: "Irrevocable jurisdiction"},
		{Pattern: "consents to jurisdiction", Weight: 1.5, Description: "Jurisdiction consent"},
		{Pattern: "personal jurisdiction", Weight: 1.5, Description: "Personal jurisdiction"},
		{Pattern: "foreign jurisdiction", Weight: 2.5, Description: "Foreign court jurisdiction"},

		// Venue
		{Pattern: "venue shall be", Weight: 1.5, Description: "Venue specified"},
		{Pattern: "exclusive venue", Weight: 2.0, Description: "Single venue option"},
		{Pattern: "State of Delaware", Weight: 1.5, Description: "Delaware venue"},
		{Pattern: "State of New York", Weight: 1.5, Description: "NY venue"},
		{Pattern: "State of California", Weight: 1.5, Description: "California venue"},
		{Pattern: "London, England", Weight: 2.0, Description: "London venue"},
		{Pattern: "Singapore", Weight: 1.5, Description: "Singapore venue"},
		{Pattern: "Hong Kong", Weight: 1.5, Description: "Hong Kong venue"},

		// Jury trial waiver
		{Pattern: "waives right to jury trial", Weight: 2.5, Description: "Jury trial waiver"},
		{Pattern: "waive jury trial", Weight: 2.5, Description: "Jury trial waiver"},
		{Pattern: "waives right to trial by jury", Weight: 2.5, Description: "Jury trial waiver"},
		{Pattern: "bench trial", Weight: 1.5, Description: "Bench trial only"},
		{Pattern: "judge alone", Weight: 1.5, Description: "Judge-only trial"},

		// Class action waiver
		{Pattern: "waives class action", Weight: 2.5, Description: "Class action waiver"},
		{Pattern: "class action waiver", Weight: 2.5, Description: "Class action waiver"},
		{Pattern: "waives right to class action", Weight: 2.5, Description: "Class action waiver"},
		{Pattern: "individual basis only", Weight: 2.0, Description: "Individual claims only"},
		{Pattern: "no class proceedings", Weight: 2.5, Description: "No class proceedings"},
		{Pattern: "representative action", Weight: 2.0, Description: "Representative action waiver"},

		// Legal fees
		{Pattern: "each party bears own costs", Weight: 1.5, Description: "Each pays own fees"},
		{Pattern: "own legal fees", Weight: 1.0, Description: "Own fees"},
		{Pattern: "prevailing party", Weight: 2.0, Description: "Fee shifting"},
		{Pattern: "prevailing party entitled to fees", Weight: 2.0, Description: "Winner gets fees"},
		{Pattern: "loser pays", Weight: 2.5, Description: "Loser pays costs"},
		{Pattern: "losing party shall pay", Weight: 2.5, Description: "Loser pays"},
		{Pattern: "recover attorneys' fees", Weight: 2.0, Description: "Fee recovery clause"},
		{Pattern: "reasonable attorneys' fees", Weight: 1.5, Description: "Fee recovery"},

		// Mediation
		{Pattern: "mediation", Weight: 0.5, Description: "Mediation step (often good)"},
		{Pattern: "good faith negotiation", Weight: 0.5, Description: "Negotiation step (often good)"},
		{Pattern: "escalation procedure", Weight: 0.5, Description: "Escalation process"},
		{Pattern: "informal dispute resolution", Weight: 0.5, Description: "Informal resolution"},

		// Statute of limitations
		{Pattern: "one year limitation", Weight: 2.0, Description: "Short statute of limitations"},
		{Pattern: "6 month limitation", Weight: 2.5, Description: "Very short limitation period"},
		{Pattern: "must bring claim within", Weight: 1.5, Description: "Limitation period"},
		{Pattern: "shortened limitation", Weight: 2.0, Description: "Shortened limitation period"},
	}
}

func complianceKeywords() []Entry {
	return []Entry{
		// Regulatory compliance
		{Pattern: "shall comply with all applicable laws", Weight: 1.0, Description: "General compliance"},
		{Pattern: "responsible for compliance", Weight: 2.0, Description: "Compliance responsibility"},
		{Pattern: "sole responsibility for compliance", Weight: 2.5, Description: "Sole compliance burden"},
		{Pattern: "all regulatory requirements", Weight: 1.5, Description: "Regulatory requirements"},
		{Pattern: "all applicable regulations", Weight: 1.0, Description: "Regulatory compliance"},
		{Pattern: "regulatory violations", Weight: 2.0, Description: "Violation responsibility"},

		// Permits and licenses
		{Pattern: "obtain all necessary permits", Weight: 2.0, Description: "Permit obligation"},
		{Pattern: "at own expense", Weight: 1.5, Description: "Cost burden indicator"},
		{Pattern: "all necessary licenses", Weight: 1.5, Description: "License requirements"},
		{Pattern: "maintain all permits", Weight: 1.5, Description: "Ongoing permit requirement"},
		{Pattern: "shall obtain at its expense", Weight: 2.0, Description: "Cost obligation"},
		{Pattern: "responsible for obtaining", Weight: 1.5, Description: "Obligation to obtain"},

		// Strict liability
		{Pattern: "strict liability", Weight: 2.5, Description: "Strict liability standard"},
		{Pattern: "strictly liable", Weight: 2.5, Description: "Strict liability"},
		{Pattern: "regardless of fault", Weight: 2.5, Description: "Liability without fault"},
		{Pattern: "without regard to negligence", Weight: 2.5, Description: "Liability without negligence"},
		{Pattern: "absolute liability", Weight: 3.0, Description: "Absolute liability"},

		// Audits
		{Pattern: "subject to audit", Weight: 1.5, Description: "Audit rights"},
		{Pattern: "unlimited audit", Weight: 2.5, Description: "Unlimited audit rights"},
		{Pattern: "audit at any time", Weight: 2.0, Description: "Unrestricted audit timing"},
		{Pattern: "audit upon reasonable notice", Weight: 1.0, Description: "Standard audit right"},
		{Pattern: "records retention", Weight: 1.0, Description: "Records requirement"},
		{Pattern: "maintain records for", Weight: 1.0, Description: "Records retention period"},
		{Pattern: "inspection rights", Weight: 1.5, Description: "Inspection rights"},
		{Pattern: "right to inspect", Weight: 1.5, Description: "Inspection rights"},

		// Reporting
		{Pattern: "reporting obligations", Weight: 1.5, Description: "Reporting requirements"},
		{Pattern: "shall report", Weight: 1.0, Description: "Reporting requirement"},
		{Pattern: "monthly reporting", Weight: 1.0, Description: "Monthly reports"},
		{Pattern: "quarterly reporting", Weight: 1.0, Description: "Quarterly reports"},
		{Pattern: "provide reports", Weight: 1.0, Description: "Report provision"},

		// Government approvals
		{Pattern: "government approval", Weight: 2.0, Description: "Government approval required"},
		{Pattern: "regulatory approval", Weight: 1.5, Description: "Regulatory approval"},
		{Pattern: "government consent", Weight: 2.0, Description: "Government consent required"},
		{Pattern: "prior government approval", Weight: 2.0, Description: "Prior government approval"},

		// Export controls
		{Pattern: "export control", Weight: 1.5, Description: "Export controls apply"},
		{Pattern: "export restrictions", Weight: 1.5, Description: "Export restrictions"},
		{Pattern: "export compliance", Weight: 1.5, Description: "Export compliance"},
		{Pattern: "ITAR", Weight: 2.0, Description: "ITAR restrictions"},
		{Pattern: "EAR", Weight: 1.5, Description: "EAR restrictions"},
		{Pattern: "sanctions", Weight: 2.0, Description: "Sanctions compliance"},
		{Pattern: "OFAC", Weight: 2.0, Description: "OFAC compliance"},

		// Industry frameworks
		{Pattern: "HIPAA", Weight: 1.5, Description: "HIPAA compliance"},
		{Pattern: "GDPR", Weight: 1.5, Description: "GDPR compliance"},
		{Pattern: "PCI DSS", Weight: 1.5, Description: "PCI compliance"},
		{Pattern: "SOC 2", Weight: 1.0, Description: "SOC 2 compliance"},
		{Pattern: "ISO 27001", Weight: 1.0, Description: "ISO compliance"},
		{Pattern: "CCPA", Weight: 1.5, Description: "CCPA compliance"},

		// Certifications
		{Pattern: "shall certify", Weight: 1.5, Description: "Certification requirement"},
		{Pattern: "provide certification", Weight: 1.5, Description: "Certification obligation"},
		{Pattern: "annual certification", Weight: 1.5, Description: "Annual certification"},
		{Pattern: "written certification", Weight: 1.0, Description: "Written certification"},
	}
}

func operationalKeywords() []Entry {
	return []Entry{
		// Performance standards
		{Pattern: "time is of the essence", Weight: 2.5, Description: "Strict time requirements"},
		{Pattern: "time shall be of the essence", Weight: 2.5, Description: "Strict timing"},
		{Pattern: "strict compliance", Weight: 2.0, Description: "Strict compliance required"},
		{Pattern: "material breach", Weight: 1.5, Description: "Material breach standard"},
		{Pattern: "substantial performance", Weight: 1.0, Description: "Substantial performance"},
		{Pattern: "best efforts", Weight: 1.0, Description: "Best efforts standard"},
		{Pattern: "commercially reasonable efforts", Weight: 0.5, Description: "Reasonable efforts (good)"},
		{Pattern: "reasonable efforts", Weight: 0.5, Description: "Reasonable efforts (good)"},

		// Service levels
		{Pattern: "service level agreement", Weight: 1.0, Description: "SLA mentioned"},
		{Pattern: "SLA", Weight: 1.0, Description: "SLA mentioned"},
		{Pattern: "uptime", Weight: 1.0, Description: "Uptime requirement"},
		{Pattern: "99.9%", Weight: 1.0, Description: "High uptime requirement"},
		{Pattern: "99.99%", Weight: 1.5, Description: "Very high uptime"},
		{Pattern: "service credits", Weight: 0.5, Description: "Service credits (remedy)"},
		{Pattern: "response time", Weight: 1.0, Description: "Response time requirements"},
		{Pattern: "resolution time", Weight: 1.0, Description: "Resolution time requirements"},

		// Force majeure
		{Pattern: "force majeure", Weight: 0.5, Description: "Force majeure provision"},
		{Pattern: "act of God", Weight: 0.5, Description: "Force majeure provision"},
		{Pattern: "no force majeure", Weight: 2.5, Description: "No force majeure protection"},
		{Pattern: "force majeure shall not apply", Weight: 2.5, Description: "FM exclusion"},
		{Pattern: "excused from performance", Weight: 0.5, Description: "Performance excuse"},
		{Pattern: "beyond reasonable control", Weight: 0.5, Description: "FM language"},
		{Pattern: "including pandemic", Weight: 0.5, Description: "Pandemic FM coverage"},

		// Approval rights
		{Pattern: "requires prior written approval", Weight: 2.0, Description: "Prior approval needed"},
		{Pattern: "subject to approval", Weight: 1.5, Description: "Approval requirement"},
		{Pattern: "consent required", Weight: 1.5, Description: "Consent requirement"},
		{Pattern: "prior written consent", Weight: 1.5, Description: "Written consent needed"},
		{Pattern: "shall not unreasonably withhold", Weight: 0.5, Description: "Reasonable consent"},
		{Pattern: "in its sole discretion", Weight: 2.5, Description: "Discretionary approval"},
		{Pattern: "may withhold consent", Weight: 2.0, Description: "May refuse consent"},
		{Pattern: "absolute discretion", Weight: 2.5, Description: "Absolute discretion"},

		// Exclusivity
		{Pattern: "exclusive dealing", Weight: 2.5, Description: "Exclusive dealing requirement"},
		{Pattern: "exclusive arrangement", Weight: 2.0, Description: "Exclusive arrangement"},
		{Pattern: "sole and exclusive", Weight: 2.5, Description: "Sole and exclusive"},
		{Pattern: "exclusive right", Weight: 2.0, Description: "Exclusive rights"},
		{Pattern: "shall not deal with", Weight: 2.0, Description: "Dealing restriction"},
		{Pattern: "shall not contract with", Weight: 2.0, Description: "Contracting restriction"},
		{Pattern: "non-exclusive", Weight: 0.5, Description: "Non-exclusive (good)"},

		// Non-compete
		{Pattern: "non-compete", Weight: 2.0, Description: "Non-compete provision"},
		{Pattern: "non-competition", Weight: 2.0, Description: "Non-competition provision"},
		{Pattern: "shall not compete", Weight: 2.5, Description: "Competition restriction"},
		{Pattern: "competing business", Weight: 2.0, Description: "Competing business restriction"},
		{Pattern: "compete within", Weight: 2.0, Description: "Competition scope"},
		{Pattern: "competitive activity", Weight: 2.0, Description: "Competitive activity restriction"},

		// Non-solicitation
		{Pattern: "non-solicitation", Weight: 1.5, Description: "Non-solicitation provision"},
		{Pattern: "shall not solicit", Weight: 1.5, Description: "Solicitation restriction"},
		{Pattern: "employee solicitation", Weight: 1.5, Description: "Employee solicitation restriction"},
		{Pattern: "customer solicitation", Weight: 1.5, Description: "Customer solicitation restriction"},

		// Change control
		{Pattern: "change order", Weight: 1.0, Description: "Change order process"},
		{Pattern: "change request", Weight: 1.0, Description: "Change request process"},
		{Pattern: "scope change", Weight: 1.0, Description: "Scope change process"},
		{Pattern: "modification requires written", Weight: 0.5, Description: "Written modification (good)"},
		{Pattern: "no oral modification", Weight: 0.5, Description: "No oral mod (good)"},

		// Assignment
		{Pattern: "may assign", Weight: 1.5, Description: "Assignment permitted"},
		{Pattern: "shall not assign", Weight: 1.0, Description: "Assignment restricted"},
		{Pattern: "may not assign without", Weight: 1.0, Description: "Conditional assignment"},
		{Pattern: "freely assignable", Weight: 2.0, Description: "Free assignment"},
		{Pattern: "assignment requires consent", Weight: 1.0, Description: "Assignment consent"},
		{Pattern: "change of control", Weight: 1.5, Description: "Change of control provision"},

		// Subcontracting
		{Pattern: "may subcontract", Weight: 1.5, Description: "Subcontracting permitted"},
		{Pattern: "shall not subcontract", Weight: 1.5, Description: "No subcontracting"},
		{Pattern: "remains responsible for subcontractor", Weight: 1.5, Description: "Subcontractor liability"},
		{Pattern: "subcontractor performance", Weight: 1.5, Description: "Subcontractor obligations"},
	}
}
