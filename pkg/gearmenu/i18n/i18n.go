// Package i18n provides the localized strings shown by the menu screens.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var embeddedLocales embed.FS

var i *I18N

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
	lang      language.Tag
}

type MessageFile struct {
	Name    string
	Content []byte
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// Init loads the message files embedded in the binary.
func Init() error {
	files, err := embeddedMessageFiles()
	if err != nil {
		return err
	}
	return InitI18NFromBytes(files)
}

func embeddedMessageFiles() ([]MessageFile, error) {
	entries, err := embeddedLocales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("reading embedded locales: %w", err)
	}

	files := make([]MessageFile, 0, len(entries))
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		content, err := embeddedLocales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		files = append(files, MessageFile{Name: entry.Name(), Content: content})
	}
	return files, nil
}

// InitI18N loads the embedded messages and then the given files from disk on top,
// so translations shipped next to the binary can add languages or replace strings.
func InitI18N(messageFilePaths []string) error {
	files, err := embeddedMessageFiles()
	if err != nil {
		return err
	}

	bundle := newBundle()
	for _, messageFile := range files {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return fmt.Errorf("parsing message file %s: %w", messageFile.Name, err)
		}
	}

	for _, messageFile := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(messageFile); err != nil {
			return fmt.Errorf("loading message file %s: %w", messageFile, err)
		}
	}

	i = &I18N{bundle: bundle, localizer: i18n.NewLocalizer(bundle, language.English.String()), lang: language.English}
	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return fmt.Errorf("parsing message file %s: %w", messageFile.Name, err)
		}
	}

	i = &I18N{bundle: bundle, localizer: i18n.NewLocalizer(bundle, language.English.String()), lang: language.English}
	return nil
}

// SetLanguage switches the active language. English stays the fallback.
func SetLanguage(lang language.Tag) {
	if i == nil {
		return
	}
	localizer := i18n.NewLocalizer(i.bundle, lang.String(), language.English.String())
	i = &I18N{localizer: localizer, bundle: i.bundle, lang: lang}
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return fmt.Errorf("parsing language code %q: %w", code, err)
	}
	SetLanguage(lang)
	return nil
}

// Language returns the active language, English if nothing was initialized.
func Language() language.Tag {
	if i == nil {
		return language.English
	}
	return i.lang
}

// GetString retrieves a localized string by key.
// Unknown keys, or an uninitialized bundle, return the key itself.
func GetString(key string) string {
	return GetStringWithData(key, nil)
}

// GetStringWithData retrieves a localized string by key, executing its template with templateData.
func GetStringWithData(key string, templateData map[string]interface{}) string {
	if i == nil {
		return key
	}
	// A key missing from the active language comes back in English along with
	// a MessageNotFoundErr, so only an empty result counts as a miss.
	msg, _ := i.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData,
	})
	if msg == "" {
		return key
	}
	return msg
}
