package intent

import "regexp"

// jsonObjectRegex finds the first JSON-object-looking substring. The match is
// non-greedy: when the response contains several objects only the first is
// taken.
var jsonObjectRegex = regexp.MustCompile(`\{[\s\S]*?\}`)

// codeFenceRegex strips markdown code-fence markers the model tends to wrap
// JSON answers in.
var codeFenceRegex = regexp.MustCompile("```(?:json)?")

// lineCommentRegex strips // comments the model sometimes leaves inside the
// object.
var lineCommentRegex = regexp.MustCompile(`//[^\n]*`)

// extractJSONObject pulls the first JSON object substring out of a noisy
// agent response. It returns ok=false when no object-like substring exists;
// the caller decides whether the remainder parses.
func extractJSONObject(text string) (string, bool) {
	cleaned := codeFenceRegex.ReplaceAllString(text, "")
	match := jsonObjectRegex.FindString(cleaned)
	if match == "" {
		return "", false
	}
	return lineCommentRegex.ReplaceAllString(match, ""), true
}
