package providers

import (
	_ "github.com/truthlens/truthlens/src/ai/gemini"
	_ "github.com/truthlens/truthlens/src/ai/openai"
)
