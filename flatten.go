package promptext

// Header is the fixed column order of the output table.
var Header = []string{"Region", "Advisory", "Cycle", "School", "Prompt", "Limit", "Unit"}

// A Record is one flattened output row: a single prompt with the region,
// school, cycle and advisory it was posted under.
type Record struct {
	Region   string
	Advisory string
	Cycle    string
	School   string
	Prompt   string
	Limit    string
	Unit     string
}

// Columns returns the record's fields in Header order.
func (r Record) Columns() []string {
	return []string{r.Region, r.Advisory, r.Cycle, r.School, r.Prompt, r.Limit, r.Unit}
}

// Flatten expands region groups into one record per prompt. Order is
// preserved: region order, then school-phrase order, then prompt order.
func Flatten(groups []RegionGroup) []Record {
	var records []Record
	for _, g := range groups {
		for _, phrase := range g.Phrases {
			for _, prompt := range phrase.Predicate.Prompts {
				records = append(records, Record{
					Region:   g.Region,
					Advisory: phrase.Advisory,
					Cycle:    phrase.Predicate.Cycle,
					School:   phrase.School,
					Prompt:   prompt.Text,
					Limit:    prompt.Limit,
					Unit:     prompt.Unit,
				})
			}
		}
	}
	return records
}

// Rows renders records as string rows for a table sink.
func Rows(records []Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Columns())
	}
	return rows
}
