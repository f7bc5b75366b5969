package document

// ContextHeader opens the second chat message.
const ContextHeader = "### Context (code) ###"

// WrapContext embeds formatted context in the message sent after the instruction.
func WrapContext(formatted string) string {
	return ContextHeader + "\n" + formatted + "\n"
}

// DefaultReadmeTemplate asks for a README with a fixed set of sections and
// shows a worked example.
const DefaultReadmeTemplate = `### Instruction ###
Generate a comprehensive README.md file for the provided context. The README should follow industry best practices and be suitable for professional developers. Use resources like dora.dev, stc.org and writethedocs.org as guidelines.

It should be clear, concise and easy to read, written in a professional manner that conveys the purpose and value of the project.

### Output Format ###
A well-structured README.md file in Markdown format. The README should include at least the following sections:

Description
Table of Contents
Features
Installation
Usage
Contributing
License
Contact

### Example Dialogue ###
Instruction:
Generate a comprehensive README.md file for the provided project. The README should follow industry best practices and be suitable for professional developers.

Context (project):
Project Name: Cymbal Coffee
Description: A Python library for data analysis and visualization, designed to simplify common data wrangling tasks and generate insightful plots.
Technologies Used: Python, Pandas, NumPy, Matplotlib, Seaborn
Features:
* Easy data loading from various sources (CSV, Excel, SQL, etc.)
* Powerful data cleaning and transformation functions
* Interactive data exploration with summary statistics and filtering
* Customizable visualization templates for common plot types
* Integration with Jupyter Notebooks for seamless analysis
Installation: pip install cymbal
Usage: See examples in the 'examples' directory or visit our documentation: [link to documentation]
Contribution Guidelines: We welcome contributions! Please follow our style guide and submit pull requests for review.
License: Apache 2.0 License
Contact Information: Email us at support@cymbal.coffee or open an issue on our GitHub repository.
`

// DefaultReleaseNotesTemplate is the built-in release notes instruction.
const DefaultReleaseNotesTemplate = `### Instruction ###
Create detailed release notes
`
