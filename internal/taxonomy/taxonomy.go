package taxonomy

// Category groups related skill identifiers for roll-up aggregations. The
// identifiers are bare skill names; the dataset schema maps them to the
// skill_ prefixed columns of the input.
type Category struct {
	Name   string
	Skills []string
}

// Categories is the static skill taxonomy. An ordered slice rather than a map
// so that roll-up output order is stable across runs. A skill may belong to
// more than one category; skills outside every category are still counted by
// the taxonomy-free aggregations.
var Categories = []Category{
	{Name: "Programming", Skills: []string{"sql", "python", "r"}},
	{Name: "Spreadsheets", Skills: []string{"excel", "google_sheets"}},
	{Name: "Databases", Skills: []string{
		"postgresql", "mysql", "oracle", "sql_server", "bigquery",
		"snowflake", "redshift", "vertica", "clickhouse", "databricks", "synapse",
	}},
	{Name: "Visualisation & BI Tools", Skills: []string{
		"dashboards", "data_visualization", "power_bi", "tableau", "looker",
		"qlik", "datalens", "superset",
	}},
	{Name: "Data Engineering", Skills: []string{
		"airflow", "hadoop", "spark", "kafka", "dbt",
		"talend", "informatica", "etl", "data_pipeline",
	}},
	{Name: "AI/ML Tools", Skills: []string{"chatgpt", "claude", "cursor", "copilot", "gemini"}},
	{Name: "Statistics", Skills: []string{
		"statistics", "a_b_testing", "experimentation",
		"hypothesis_testing", "data_cleaning",
	}},
}
