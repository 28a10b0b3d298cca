// Package common berisi konstanta status, kode error dan custom error
// yang dipakai di seluruh aplikasi bot.
package common

// Status Code Constants (mengikuti konvensi HTTP agar seragam dengan webhook)
const (
	// Success Codes (2xx)
	StatusOK      = 200 // Berhasil
	StatusCreated = 201 // Berhasil membuat data baru

	// Client Error Codes (4xx)
	StatusBadRequest   = 400 // Permintaan tidak valid
	StatusUnauthorized = 401 // Belum terdaftar / tidak dikenal
	StatusForbidden    = 403 // Tidak punya akses
	StatusNotFound     = 404 // Data tidak ditemukan
	StatusConflict     = 409 // Data duplikat / konflik

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Kesalahan sistem
	StatusServiceUnavailable  = 503 // Layanan eksternal tidak tersedia
)

// Response Messages (dipakai langsung sebagai balasan bot)
const (
	MsgSuccess        = "Operasi berhasil"
	MsgLaporTersimpan = "✅ Laporan berhasil disimpan"
	MsgUnauthorized   = "Anda belum terdaftar sebagai pengguna bot. Hubungi admin."
	MsgForbidden      = "Perintah ini hanya untuk admin."
	MsgNotFound       = "Data tidak ditemukan"
	MsgDuplicate      = "Nomor AO sudah pernah dilaporkan"
	MsgInternalError  = "Terjadi kesalahan sistem, coba lagi nanti."
	MsgInvalidFormat  = "Format laporan tidak dikenali"
)

// ErrorCode mendefinisikan kode error terstruktur
type ErrorCode struct {
	Code        string // Kode error (contoh: VAL_001)
	Category    string // Kategori error (contoh: Validation)
	SubCategory string // Sub kategori (contoh: Input)
	Description string // Deskripsi singkat
}

// Daftar kode error yang dipakai bot
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Kesalahan internal sistem",
	}

	// Authorization Errors (AUTH_xxx)
	ErrCodeAuthUser = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authorization",
		SubCategory: "User",
		Description: "Pengguna tidak terdaftar atau tidak aktif",
	}
	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authorization",
		SubCategory: "Role",
		Description: "Pengguna tidak punya hak akses",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Field wajib tidak lengkap",
	}
	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Format data tidak valid",
	}

	// Business Errors (BIZ_xxx)
	ErrCodeDuplicate = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "Duplicate",
		Description: "Data dengan kunci yang sama sudah tersimpan",
	}

	// Upstream IO Errors (IO_xxx)
	ErrCodeUpstreamIO = ErrorCode{
		Code:        "IO_001",
		Category:    "Upstream",
		SubCategory: "IO",
		Description: "Kegagalan komunikasi dengan layanan eksternal (Sheets/Telegram)",
	}
)

// Error adalah struktur error standar aplikasi
type Error struct {
	Code       ErrorCode // Kode error terstruktur
	Message    string    // Pesan error (Bahasa Indonesia, aman ditampilkan ke user)
	StatusCode int       // Status code padanan HTTP
	Details    any       // Informasi tambahan (misal daftar field yang kurang)
}

// Error mengembalikan message dari error
func (e *Error) Error() string {
	return e.Message
}

// Is mendukung errors.Is dengan membandingkan kode error
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code.Code == t.Code.Code
}

// NewError membuat error baru dengan informasi lengkap
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Authorization
	ErrUserNotFound  = NewError(ErrCodeAuthUser, MsgUnauthorized, StatusUnauthorized, nil)
	ErrUserInactive  = NewError(ErrCodeAuthUser, "Akun Anda sudah tidak aktif. Hubungi admin.", StatusForbidden, nil)
	ErrRoleForbidden = NewError(ErrCodeAuthRole, MsgForbidden, StatusForbidden, nil)

	// Validation
	ErrRequiredField = NewError(ErrCodeValidationInput, "Data laporan tidak lengkap", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)

	// Business
	ErrDuplicate = NewError(ErrCodeDuplicate, MsgDuplicate, StatusConflict, nil)
	ErrNotFound  = NewError(ErrCodeInternalServer, MsgNotFound, StatusNotFound, nil)

	// Upstream IO
	ErrUpstreamIO = NewError(ErrCodeUpstreamIO, MsgInternalError, StatusServiceUnavailable, nil)
)
