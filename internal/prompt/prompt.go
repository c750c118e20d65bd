// Package prompt renders the instruction template sent to the LLM.
package prompt

import (
	"fmt"
	"strings"
)

// Build wraps the project description in the fixed README-authoring
// instructions. The description is interpolated verbatim, no escaping.
func Build(description string) string {
	var sb strings.Builder

	sb.WriteString("You are a professional GitHub project assistant. Your task is to generate a comprehensive and well-structured README.md file\n")
	sb.WriteString("for a new software project. The README should be written in Markdown format and include the following sections:\n")
	sb.WriteString("1. A clear and catchy title.\n")
	sb.WriteString("2. A brief but engaging description.\n")
	sb.WriteString("3. A \"Features\" section using a bulleted list.\n")
	sb.WriteString("4. A \"Getting Started\" section with instructions for installation and usage.\n")
	sb.WriteString("5. A \"Contributing\" section.\n")
	sb.WriteString("6. A \"License\" section.\n")
	sb.WriteString("\nBased on the following project description, please generate the README content.\n\n")
	sb.WriteString(fmt.Sprintf("Project Description: \"%s\"\n", description))

	return sb.String()
}
