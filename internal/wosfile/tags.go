// Package wosfile reads Web of Science export files.
//
// It supports the two serializations WoS emits: the "plain text" format
// (two-letter field tags, one field per line, indented continuation lines)
// and the tab-delimited format (header row of tags, one row per record).
// Records are pulled lazily, one at a time, across one or more inputs.
package wosfile

import "sort"

// TagInfo describes one entry of the WoS field-tag dictionary.
type TagInfo struct {
	Tag      string
	Label    string
	Iterable bool // value holds multiple parts, separated by "; "
}

// fieldTags is the WoS field-tag dictionary. Iterable tags hold
// subdelimited multi-value content (author lists, addresses, keywords);
// the rest are scalar free text. The table is never mutated.
var fieldTags = map[string]TagInfo{
	"AB": {"AB", "Abstract", false},
	"AF": {"AF", "Author Full Names", true},
	"AR": {"AR", "Article Number", false},
	"AU": {"AU", "Authors", true},
	"BA": {"BA", "Book Authors", true},
	"BE": {"BE", "Editors", true},
	"BF": {"BF", "Book Authors Full Name", true},
	"BN": {"BN", "ISBN", false},
	"BP": {"BP", "Beginning Page", false},
	"BS": {"BS", "Book Series Subtitle", false},
	"C1": {"C1", "Author Address", true},
	"CA": {"CA", "Group Authors", true},
	"CL": {"CL", "Conference Location", false},
	"CR": {"CR", "Cited References", true},
	"CT": {"CT", "Conference Title", false},
	"CY": {"CY", "Conference Date", false},
	"D2": {"D2", "Book DOI", false},
	"DA": {"DA", "Date Generated", false},
	"DE": {"DE", "Author Keywords", true},
	"DI": {"DI", "DOI", false},
	"DT": {"DT", "Document Type", false},
	"EA": {"EA", "Early Access Date", false},
	"EI": {"EI", "eISSN", false},
	"EM": {"EM", "E-mail Addresses", true},
	"EP": {"EP", "Ending Page", false},
	"EY": {"EY", "Early Access Year", false},
	"FU": {"FU", "Funding Agency and Grant Number", true},
	"FX": {"FX", "Funding Text", false},
	"GA": {"GA", "Document Delivery Number", false},
	"GP": {"GP", "Book Group Authors", true},
	"HC": {"HC", "ESI Highly Cited Paper", false},
	"HO": {"HO", "Conference Host", false},
	"HP": {"HP", "ESI Hot Paper", false},
	"ID": {"ID", "Keywords Plus", true},
	"IS": {"IS", "Issue", false},
	"J9": {"J9", "29-Character Source Abbreviation", false},
	"JI": {"JI", "ISO Source Abbreviation", false},
	"LA": {"LA", "Language", false},
	"MA": {"MA", "Meeting Abstract", false},
	"NR": {"NR", "Cited Reference Count", false},
	"OA": {"OA", "Open Access Indicator", false},
	"OI": {"OI", "ORCID Identifier", true},
	"P2": {"P2", "Chapter Count", false},
	"PA": {"PA", "Publisher Address", false},
	"PD": {"PD", "Publication Date", false},
	"PG": {"PG", "Page Count", false},
	"PI": {"PI", "Publisher City", false},
	"PM": {"PM", "PubMed ID", false},
	"PN": {"PN", "Part Number", false},
	"PT": {"PT", "Publication Type", false},
	"PU": {"PU", "Publisher", false},
	"PY": {"PY", "Year Published", false},
	"RI": {"RI", "ResearcherID Number", true},
	"RP": {"RP", "Reprint Address", false},
	"SC": {"SC", "Research Areas", false},
	"SE": {"SE", "Book Series Title", false},
	"SI": {"SI", "Special Issue", false},
	"SN": {"SN", "ISSN", false},
	"SO": {"SO", "Publication Name", false},
	"SP": {"SP", "Conference Sponsors", true},
	"SU": {"SU", "Supplement", false},
	"TC": {"TC", "Times Cited", false},
	"TI": {"TI", "Document Title", false},
	"U1": {"U1", "Usage Count (Last 180 Days)", false},
	"U2": {"U2", "Usage Count (Since 2013)", false},
	"UT": {"UT", "Accession Number", false},
	"VL": {"VL", "Volume", false},
	"WC": {"WC", "Web of Science Categories", true},
	"Z9": {"Z9", "Total Times Cited Count", false},
}

// IsIterable reports whether tag holds subdelimited multi-value content.
// The second result is false when the tag is not in the dictionary.
func IsIterable(tag string) (iterable, known bool) {
	info, ok := fieldTags[tag]
	return info.Iterable, ok
}

// TagLabel returns the human-readable name of tag, or "" if unknown.
func TagLabel(tag string) string {
	return fieldTags[tag].Label
}

// Tags returns the field-tag dictionary sorted by tag.
func Tags() []TagInfo {
	infos := make([]TagInfo, 0, len(fieldTags))
	for _, info := range fieldTags {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Tag < infos[j].Tag })
	return infos
}
