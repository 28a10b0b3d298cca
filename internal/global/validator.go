package global

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator menginisialisasi validator global untuk validasi input laporan.
// Nama field pada pesan error diambil dari tag `label` supaya balasan bot
// memakai istilah yang dikenal teknisi (contoh: "Nomor AO", "SN ONT").
func InitValidator() {
	Validate = validator.New()

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		label := fld.Tag.Get("label")
		if label == "" {
			return fld.Name
		}
		return label
	})

	// Validator custom "no_mention": handle tidak boleh membawa "@" di depan
	_ = Validate.RegisterValidation("no_mention", func(fl validator.FieldLevel) bool {
		return !strings.HasPrefix(fl.Field().String(), "@")
	})
}

// MissingFields mengubah error validator menjadi daftar label field yang kosong.
// Mengembalikan nil kalau err bukan validator.ValidationErrors.
func MissingFields(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	var fields []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			fields = append(fields, fe.Field())
		}
	}
	return fields
}
