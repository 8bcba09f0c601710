// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chat

import (
	"fmt"
	"strings"

	"github.com/poiesic/warebot/core"
)

// promptTemplate is the fixed instruction scaffold sent to the completion
// model. Only the mode, the retrieved records, and the question vary; the
// rules are constant so answers stay grounded in the supplied records.
const promptTemplate = `You are a warehouse AI assistant.

Mode: %s
Rules:
- Use ONLY inventory data provided
- If data is missing, reply: "Data not available."
- Be concise and factual.

Records:
%s

Question:
%s

Provide an accurate answer.`

// BuildPrompt assembles the completion prompt from the mode, the retrieved
// documents in retrieval order, and the user's question. The assembly is
// deterministic: the same inputs always produce the same prompt. An empty
// document list leaves the Records section blank rather than failing; the
// instruction rules tell the model how to answer without data.
func BuildPrompt(mode core.Mode, docs []*core.Document, question string) string {
	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Text
	}
	return fmt.Sprintf(promptTemplate, mode, strings.Join(texts, "\n"), question)
}
