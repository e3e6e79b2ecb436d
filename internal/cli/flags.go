package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// AnalyzeCommand — score a .jsonl comment stream and write CSV results.
type AnalyzeCommand struct {
	InputStream   string  `long:"input-stream" description:"Input stream file path (must be a .jsonl file)"`
	OutputCSVDir  string  `long:"output-csv-dir" description:"Output directory for the sentiment analysis CSV files"`
	CommentChunks int     `long:"visual-comments-chunks" description:"Chunk count for the comment sentiment trend (0 = config default)"`
	TokensPercent float64 `long:"visual-tokens-percent" description:"Top share of tokens, as a fraction, kept for the token trend (0 = config default)"`

	globals *GlobalFlags
	version string
}

// PlotCommand — render trend charts from previously written CSV results.
type PlotCommand struct {
	InputCSVDir   string  `long:"input-csv-dir" description:"Directory holding the CSV files written by analyze"`
	OutputPlotDir string  `long:"output-plot-dir" description:"Output directory for the rendered chart images"`
	CommentChunks int     `long:"visual-comments-chunks" description:"Chunk count for the comment sentiment trend (0 = config default)"`
	TokensPercent float64 `long:"visual-tokens-percent" description:"Top share of tokens, as a fraction, kept for the token trend (0 = config default)"`

	globals *GlobalFlags
	version string
}

// RunCommand — full pipeline: analyze and plot in one invocation.
type RunCommand struct {
	InputStream   string  `long:"input-stream" description:"Input stream file path (must be a .jsonl file)"`
	OutputCSVDir  string  `long:"output-csv-dir" description:"Output directory for the sentiment analysis CSV files"`
	OutputPlotDir string  `long:"output-plot-dir" description:"Output directory for the rendered chart images"`
	CommentChunks int     `long:"visual-comments-chunks" description:"Chunk count for the comment sentiment trend (0 = config default)"`
	TokensPercent float64 `long:"visual-tokens-percent" description:"Top share of tokens, as a fraction, kept for the token trend (0 = config default)"`

	globals *GlobalFlags
	version string
}

// StatusCommand — show resolved configuration and lexicon availability.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}
