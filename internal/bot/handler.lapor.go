package bot

import (
	"context"
	"fmt"
	"strings"

	activitymodels "github.com/rezhamata/BOT-REKAPAN/internal/api/activity/models"
	"github.com/rezhamata/BOT-REKAPAN/internal/common"
)

const teksBantuan = `🤖 <b>BOT REKAPAN AKTIVASI</b>

Perintah teknisi:
/lapor &lt;isi laporan&gt; - kirim laporan aktivasi (tempel teks dari sistem sumber atau format manual LABEL : nilai)

Perintah admin:
/harian [dd/mm/yyyy] - rekap harian
/mingguan [dd/mm/yyyy] - rekap mingguan (Senin s.d. Minggu)
/bulanan [dd/mm/yyyy] - rekap bulanan
/rekap - rekap semua periode
/export [harian|mingguan|bulanan] [dd/mm/yyyy] - unduh CSV
/bersihkan - buang laporan duplikat di sheet

Tanggal anchor opsional; tanpa tanggal dipakai hari ini.`

// handleHelp membalas daftar perintah. Tidak butuh registrasi supaya
// pengguna baru tahu harus menghubungi admin.
func (r *Router) handleHelp(ctx context.Context, chatID int64, handle string) {
	r.reply(ctx, chatID, teksBantuan)
	r.activity.Record(ctx, chatID, handle, "/help", activitymodels.ActivityOK, "")
}

// handleLapor memproses perintah /lapor: otorisasi pengirim, lalu jalankan
// jalur tulis laporan sampai tersimpan atau ditolak.
func (r *Router) handleLapor(ctx context.Context, chatID int64, handle, payload string) {
	user, err := r.users.ResolveUser(ctx, handle)
	if err != nil {
		r.replyError(ctx, chatID, err)
		r.activity.Record(ctx, chatID, handle, "/lapor", activitymodels.ActivityRejected, err.Error())
		return
	}

	if strings.TrimSpace(payload) == "" {
		r.reply(ctx, chatID, "Isi laporan kosong. Kirim: /lapor diikuti teks laporan.")
		return
	}

	record, err := r.lapor.Submit(ctx, payload, user.Handle)
	if err != nil {
		r.replyError(ctx, chatID, err)
		r.activity.Record(ctx, chatID, user.Handle, "/lapor", activitymodels.ActivityRejected, err.Error())
		return
	}

	ringkasan := fmt.Sprintf("%s\n\nAO: %s\nWorkorder: %s\nOwner: %s\nTeknisi: %s",
		common.MsgLaporTersimpan,
		tampil(record.AO), tampil(record.Workorder), tampil(record.Owner), tampil(record.Teknisi))
	r.reply(ctx, chatID, ringkasan)
	r.activity.Record(ctx, chatID, user.Handle, "/lapor", activitymodels.ActivityOK, record.AO)
}

// tampil mengganti nilai kosong dengan "-" untuk ringkasan balasan
func tampil(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
