// Package prompt holds the fixed prompt templates sent to the model.
package prompt

import "fmt"

// Ping проверяет, что ключ и модель рабочие.
const Ping = "Hi"

const analyzeTemplate = `
Act as a Math Analyst.
Target Formula: "%s"
Context: "%s"
Output JSON ONLY: {"is_graphable": true/false, "reason": "Persian explanation"}
`

// ChartSchema описывает контракт, который ждёт фронтенд графиков.
const ChartSchema = `{
    "chart_type": "line",
    "x_axis_label": "Label X (e.g. Time $t$)",
    "y_axis_label": "Label Y",
    "labels": [1, 2, 3],
    "datasets": [
        {
            "label": "Legend Name",
            "data": [10, 20, 30],
            "borderColor": "#00d2ff",
            "borderWidth": 3,
            "pointRadius": 4,
            "tension": 0.4
        }
    ],
    "explanation": "Your Markdown and LaTeX text here."
}`

const visualizeTemplate = `
You are the Gemini Core Engine.

INPUTS:
- Formula: "%s"
- Context: "%s"

TASKS:
1. Simulate data (X, Y) logically based on the context.
2. Generate a Rich Explanation in PERSIAN (Farsi).
   - Use Markdown (headers ` + "`###`" + `, bold ` + "`**`" + `, lists ` + "`-`" + `).
   - Use LaTeX for ALL math symbols enclosed in single dollar signs ` + "`$`" + `.
     Example: "The value of $x^2$ is important."
   - **IMPORTANT**: Do NOT use any HTML tags (like <span> or <div>) inside the JSON. Only Markdown and LaTeX.

OUTPUT FORMAT (Strict JSON):
%s
`

// Analyze asks whether the formula can be plotted.
func Analyze(formula, context string) string {
	return fmt.Sprintf(analyzeTemplate, formula, context)
}

// Visualize asks for simulated chart data and a Persian explanation.
func Visualize(formula, context string) string {
	return fmt.Sprintf(visualizeTemplate, formula, context, ChartSchema)
}
