// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional deepl settings file.
//
// The settings file is YAML. Its location is, in order:
//   - the DEEPL_CONFIG environment variable, or
//   - ~/.deepl/config.yaml
//
// A file named by DEEPL_CONFIG must exist. The default-path file is
// optional: when it is absent every setting keeps its default.
//
//	server_url: https://api.deepl.com
//	timeout: 45s
//	source_lang: de
//	target_lang: en-GB
//
// server_url accepts ${VAR} and ${VAR:-default} references so one file
// can serve both the free and the pro endpoint.
package config
