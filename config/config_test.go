package config

import (
	"reflect"
	"testing"
)

func TestChatIDList(t *testing.T) {
	cfg := &Configuration{TelegramChatIDs: "-123456789, 987654321 ,abc,,42"}

	dapat := cfg.ChatIDList()
	mau := []int64{-123456789, 987654321, 42}
	if !reflect.DeepEqual(dapat, mau) {
		t.Errorf("ChatIDList = %v, mau %v", dapat, mau)
	}
}

func TestChatIDList_Kosong(t *testing.T) {
	cfg := &Configuration{}
	if dapat := cfg.ChatIDList(); len(dapat) != 0 {
		t.Errorf("konfigurasi kosong harus tanpa chat ID, dapat %v", dapat)
	}
}
