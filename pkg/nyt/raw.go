package nyt

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RawResponse is the top stories payload as returned by the API
type RawResponse struct {
	Status  string       `json:"status"`
	Results []RawArticle `json:"results"`
}

// RawArticle is a single result item. All fields are optional and tolerate
// unexpected JSON types, bad values decode as empty.
type RawArticle struct {
	URI           looseString  `json:"uri"`
	Title         looseString  `json:"title"`
	Abstract      looseString  `json:"abstract"`
	Byline        looseString  `json:"byline"`
	PublishedDate looseString  `json:"published_date"`
	UpdatedDate   looseString  `json:"updated_date"`
	Section       looseString  `json:"section"`
	Subsection    looseString  `json:"subsection"`
	URL           looseString  `json:"url"`
	Multimedia    []RawMedia   `json:"multimedia"`
	GeoFacet      looseStrings `json:"geo_facet"`
	DesFacet      looseStrings `json:"des_facet"`
	OrgFacet      looseStrings `json:"org_facet"`
	PerFacet      looseStrings `json:"per_facet"`
}

// RawMedia is a multimedia entry of the article
type RawMedia struct {
	URL     looseString `json:"url"`
	Caption looseString `json:"caption"`
}

// looseString accepts strings, numbers and booleans, anything else decodes as empty
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			*s = ""
			return nil
		}
		*s = looseString(v)
	case 't', 'f':
		*s = looseString(strconv.FormatBool(data[0] == 't'))
	case 'n', '{', '[':
		*s = ""
	default:
		*s = looseString(data)
	}
	return nil
}

// looseStrings accepts an array of strings. The API sends "" instead of an empty array
// for some facets, that and any other non-array value decodes as empty. Array entries are
// kept as sent, including empty ones.
type looseStrings []string

func (s *looseStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*s = nil
		return nil
	}
	var items []looseString
	if err := json.Unmarshal(data, &items); err != nil {
		*s = nil
		return nil
	}
	res := make([]string, 0, len(items))
	for _, item := range items {
		res = append(res, string(item))
	}
	*s = res
	return nil
}

// UnmarshalJSON keeps decoding even if multimedia is not an array
func (a *RawArticle) UnmarshalJSON(data []byte) error {
	type plain RawArticle
	var tmp struct {
		plain
		Multimedia json.RawMessage `json:"multimedia"`
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		// not an object, keep it as an empty record
		*a = RawArticle{}
		return nil
	}
	*a = RawArticle(tmp.plain)
	a.Multimedia = nil
	if len(tmp.Multimedia) > 0 && tmp.Multimedia[0] == '[' {
		var media []json.RawMessage
		if err := json.Unmarshal(tmp.Multimedia, &media); err == nil {
			for _, m := range media {
				var rm RawMedia
				if err := json.Unmarshal(m, &rm); err == nil {
					a.Multimedia = append(a.Multimedia, rm)
				} else {
					a.Multimedia = append(a.Multimedia, RawMedia{})
				}
			}
		}
	}
	return nil
}

// UnmarshalJSON decodes results only when it is an array, status is always decoded leniently
func (r *RawResponse) UnmarshalJSON(data []byte) error {
	var tmp struct {
		Status  looseString     `json:"status"`
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	r.Status = string(tmp.Status)
	r.Results = nil
	if len(tmp.Results) > 0 && tmp.Results[0] == '[' {
		if err := json.Unmarshal(tmp.Results, &r.Results); err != nil {
			r.Results = nil
		}
	}
	return nil
}
