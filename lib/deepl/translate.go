// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

package deepl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// TranslateRequest is the input to Translate.
type TranslateRequest struct {
	SourceLang string
	TargetLang string
	Text       string

	// GlossaryID is optional. DeepL requires SourceLang when it is set.
	GlossaryID string
}

func (r TranslateRequest) form() url.Values {
	form := url.Values{
		"source_lang": {r.SourceLang},
		"target_lang": {r.TargetLang},
		"text":        {r.Text},
	}
	if r.GlossaryID != "" {
		form.Set("glossary_id", r.GlossaryID)
	}
	return form
}

// Translation is one translated text.
type Translation struct {
	DetectedSourceLanguage string `json:"detected_source_language"`
	Text                   string `json:"text"`
}

// TranslateResponse is the decoded body of a translate call.
type TranslateResponse struct {
	Translations []Translation `json:"translations"`
}

// Translate translates request.Text and returns the first translation.
func (client *Client) Translate(ctx context.Context, request TranslateRequest) (string, error) {
	response, err := client.TranslateDetailed(ctx, request)
	if err != nil {
		return "", err
	}
	return response.Translations[0].Text, nil
}

// TranslateDetailed translates request.Text and returns the full decoded
// response. The response is guaranteed to hold at least one translation.
func (client *Client) TranslateDetailed(ctx context.Context, request TranslateRequest) (*TranslateResponse, error) {
	body, err := client.do(ctx, requestFor(http.MethodPost, "/v2/translate", request.form()))
	if err != nil {
		return nil, err
	}

	var response TranslateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("deepl: decoding translate response: %w", err)
	}
	if len(response.Translations) == 0 {
		return nil, ErrNoTranslations
	}
	return &response, nil
}

// requestFor builds a request with an optional form body.
func requestFor(method, path string, form url.Values) request {
	return request{method: method, path: path, form: form}
}
