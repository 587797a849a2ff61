// Package mcpserver defines the generate_image tool and its handler for the
// MCP stdio server assembled in cmd/imagen-mcp.
package mcpserver

import (
	"encoding/json"
)

// ToolName is the single tool this server exposes.
const ToolName = "generate_image"

// ToolDefinition defines a tool for the MCP SDK.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// GetToolDefinitions returns tool definitions for the official MCP SDK.
func GetToolDefinitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        ToolName,
			Description: "Generate an image based on a prompt. Returns an image URL that can be used in markdown format like ![description](URL) to display the image",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"prompt": {
						"type": "string",
						"description": "The prompt text for image generation. The prompt MUST be in English."
					}
				},
				"required": ["prompt"]
			}`),
		},
	}
}

// Instructions is the long-form usage guide sent to the host at handshake.
const Instructions = `Use the generate_image tool to create images from text descriptions. The returned URL can be used in markdown format like ![description](URL) to display the image.

Before generating an image, please read the <Imagen_prompt_guide> section to understand how to create effective prompts.

<Imagen_prompt_guide>
## Prompt writing basics
Description of the image to generate. Maximum prompt length is 480 tokens. A good prompt is descriptive and clear, and makes use of meaningful keywords and modifiers. Start by thinking of your subject, context, and style.
Example Prompt: A sketch (style) of a modern apartment building (subject) surrounded by skyscrapers (context and background).
1. Subject: The first thing to think about with any prompt is the subject: the object, person, animal, or scenery you want an image of.
2. Context and background: Just as important is the background or context in which the subject will be placed. Try placing your subject in a variety of backgrounds. For example, a studio with a white background, outdoors, or indoor environments.
3. Style: Finally, add the style of image you want. Styles can be general (painting, photograph, sketches) or very specific (pastel painting, charcoal drawing, isometric 3D). You can also combine styles.
After you write a first version of your prompt, refine your prompt by adding more details until you get to the image that you want. Iteration is important. Start by establishing your core idea, and then refine and expand upon that core idea until the generated image is close to your vision.
Example Prompt: close-up photo of a woman in her 20s, street photography, movie still, muted orange warm tones
Example Prompt: captivating photo of a woman in her 20s utilizing a street photography style. The image should look like a movie still with muted orange warm tones.
Additional advice for Imagen prompt writing:
- Use descriptive language: Employ detailed adjectives and adverbs to paint a clear picture.
- Provide context: If necessary, include background information to aid the AI's understanding.
- Reference specific artists or styles: If you have a particular aesthetic in mind, referencing specific artists or art movements can be helpful.
- Enhancing the facial details in your personal and group images: Specify facial details as a focus of the photo (for example, use the word "portrait" in the prompt).
## Generate text in images
Imagen can add text into images. Use the following guidance to get the most out of this feature:
- Iterate with confidence: You might have to regenerate images until you achieve the look you want.
- Keep it short: Limit text to 25 characters or less for optimal generation.
- Multiple phrases: Experiment with two or three distinct phrases to provide additional information. Avoid exceeding three phrases for cleaner compositions.
Example Prompt: A poster with the text "Summerland" in bold font as a title, underneath this text is the slogan "Summer never felt so good"
- Inspire font style: Specify a general font style to subtly influence the choice. Don't rely on precise font replication, but expect creative interpretations.
- Font size: Specify a font size or a general indication of size (for example, small, medium, large).
## Advanced prompt writing techniques
### Photography
- Prompt includes: "A photo of..."
To use this style, start with keywords that clearly tell Imagen that you're looking for a photograph. For example:
Example Prompt: A photo of coffee beans in a kitchen on a wooden surface
Example Prompt: A photo of a modern building with water in the background
#### Photography modifiers
You can combine multiple modifiers for more precise control.
1. Camera Proximity - Close up, taken from far away
2. Camera Position - aerial, from below
3. Lighting - natural, dramatic, warm, cold
4. Camera Settings - motion blur, soft focus, bokeh, portrait
5. Lens types - 35mm, 50mm, fisheye, wide angle, macro
6. Film types - black and white, polaroid
Example Prompt: a polaroid portrait of a dog wearing sunglasses
### Illustration and art
- Prompt includes: "A painting of...", "A sketch of..."
Art styles vary from monochrome styles like pencil sketches to hyper-realistic digital art:
Example Prompt: A technical pencil drawing of an angular sporty electric sedan with skyscrapers in the background
Example Prompt: A pastel painting of an angular sporty electric sedan with skyscrapers in the background
#### Shapes and materials
- Prompt includes: "...made of...", "...in the shape of..."
Example Prompt: a duffle bag made of cheese
Example Prompt: neon tubes in the shape of a bird
#### Historical art references
- Prompt includes: "...in the style of..."
Example Prompt: generate an image in the style of an impressionist painting: a wind farm
### Image quality modifiers
- General Modifiers - high-quality, beautiful, stylized
- Photos - 4K, HDR, Studio Photo
- Art, Illustration - by a professional, detailed
Example Prompt: 4k HDR beautiful photo of a corn stalk taken by a professional photographer
### Aspect ratios
1. Square (1:1, default) - A standard square photo. Common uses include social media posts.
2. Fullscreen (4:3) - Commonly used in media or film; captures more of the scene horizontally.
3. Portrait full screen (3:4) - Captures more of the scene vertically compared to 1:1.
4. Widescreen (16:9) - The most common aspect ratio for TVs and monitors; use it to capture more of the background.
5. Portrait (9:16) - Use for tall objects with strong vertical orientations such as buildings, trees, or waterfalls.
Example Prompt: a digital render of a massive skyscraper, modern, grand, epic with a beautiful sunset in the background (9:16 aspect ratio)
### Photorealistic images
Suggested keywords by use case:
- People (portraits): prime or zoom lens, 24-35mm, black and white film, film noir, depth of field, duotone
- Food, insects, plants (still life): macro lens, 60-105mm, high detail, precise focusing, controlled lighting
- Sports, wildlife (motion): telephoto zoom, 100-400mm, fast shutter speed, action or movement tracking
- Astronomical, landscape (wide-angle): wide-angle 10-24mm, long exposure, sharp focus, smooth water or clouds
Example Prompt: A woman, 35mm portrait, blue and grey duotones
Example Prompt: a plate of pasta, 100mm Macro lens
Example Prompt: A deer running in the forest, fast shutter speed, movement tracking
Example Prompt: an expansive mountain range, landscape wide angle 10mm
</Imagen_prompt_guide>`
