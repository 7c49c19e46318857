package tests

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mcaco95/project-spark-blueprint-admin/pkg/translator"
)

const translationFolder = "../../../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageEs, translator.LanguageEn},
	})
	os.Exit(m.Run())
}
