package generation

import "fmt"

// buildPrompt creates the generation prompt for a single inspiration word.
// The template is fixed; the word is the only variable.
func buildPrompt(inspirationWord string) string {
	return fmt.Sprintf(`Create a React Canvas visualization inspired by the word "%s".

Requirements:
- Follow the same structure as wireframe mathematical visualizations
- Include philosophical code comments throughout
- Use wireframe aesthetic (no fills, only strokes)
- Mathematical movement patterns (Perlin noise, spirals, etc.)
- Canvas size: 550x550px
- Cream background (#F0EEE6)
- Self-contained component with useRef and useEffect
- 60fps animation using requestAnimationFrame

The code should be a complete React component function that can be executed directly.

Also provide:
- A 2-3 sentence artistic description of your creative vision
- The central philosophical theme you explored

Return the response as JSON with fields:
- componentCode: The complete React component code
- description: Your artistic description
- philosophicalTheme: The philosophical concept`, inspirationWord)
}
