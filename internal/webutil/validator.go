package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"go_5_exam_review/internal/model"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":        "名前",
	"email":       "メールアドレス",
	"title":       "タイトル",
	"question_id": "問題ID",
	"date":        "日付",
	"rating":      "評価",
	"pacing_mode": "ペース設定",
	"delta_days":  "延期日数",
}

func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func isStringKind(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe))
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("uuid", "{0}はUUID形式で入力してください。")
	registerTranslation("datetime", "{0}はYYYY-MM-DD形式で入力してください。")

	// min / max は文字列なら文字数、数値なら値の範囲としてメッセージを出し分ける
	registerBound := func(tag, stringMsg, numberMsg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			if err := ut.Add(tag+"-string", stringMsg, true); err != nil {
				return err
			}
			return ut.Add(tag+"-number", numberMsg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			key := tag + "-number"
			if isStringKind(fe) {
				key = tag + "-string"
			}
			t, _ := ut.T(key, translatedField(fe), fe.Param())
			return t
		})
	}
	registerBound("min", "{0}は{1}文字以上で入力してください。", "{0}は{1}以上で入力してください。")
	registerBound("max", "{0}は{1}文字以下で入力してください。", "{0}は{1}以下で入力してください。")
}

// ValidateStruct はバリデーションを行い、失敗時は翻訳済みの AppError を返します
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewValidationErrorResponse(validationErrors)
	}
	return model.NewAppError("VALIDATION_ERROR", "入力内容を検証できませんでした。", "", errors.Join(model.ErrInvalidInput, err))
}
