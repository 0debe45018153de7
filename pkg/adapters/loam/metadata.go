package loam

import "github.com/aretw0/intake/internal/dto"

// StepMetadata is the frontmatter of a step document.
// The markdown body becomes the step text unless "text" is set.
//
//	---
//	field: brand
//	options: [HP, Canon, Epson]
//	---
//	Please select your printer brand.
type StepMetadata = dto.StepMetadata
