package entities

type Datafeed struct {
	ID                int64            `json:"id,string,omitempty"`
	Name              string           `json:"name"`
	ContentType       string           `json:"contentType"`
	AttributeLanguage string           `json:"attributeLanguage,omitempty"`
	FileName          string           `json:"fileName"`
	FetchSchedule     *FetchSchedule   `json:"fetchSchedule,omitempty"`
	Format            *DatafeedFormat  `json:"format,omitempty"`
	Targets           []DatafeedTarget `json:"targets,omitempty"`
}

type FetchSchedule struct {
	Weekday  string `json:"weekday,omitempty"`
	Hour     int64  `json:"hour"`
	TimeZone string `json:"timeZone,omitempty"`
	FetchURL string `json:"fetchUrl,omitempty"`
}

type DatafeedFormat struct {
	FileEncoding    string `json:"fileEncoding"`
	ColumnDelimiter string `json:"columnDelimiter"`
	QuotingMode     string `json:"quotingMode"`
}

type DatafeedTarget struct {
	Language             string   `json:"language"`
	Country              string   `json:"country"`
	IncludedDestinations []string `json:"includedDestinations"`
}
