// Copyright 2026 The DeepL CLI Authors
// SPDX-License-Identifier: Apache-2.0

// Package credential resolves the DeepL API auth key.
//
// The key comes from the first non-empty source in this order:
//
//   - the explicit value (the -k/--key flag)
//   - the DEEPL_AUTH_KEY environment variable
//   - the INI credentials file, section "default", key "auth_key"
//
// The credentials file lives at ~/.deepl/credentials by default:
//
//	[default]
//	auth_key = 0123abcd-...:fx
//
// A missing file, section, or key is not an error: [Resolver.AuthKey]
// returns "" and the caller decides what an absent key means. Only a
// file that exists but cannot be read or parsed produces an error.
package credential
