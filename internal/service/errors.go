package service

import (
	"errors"
	"fmt"
)

// User-facing messages stay in Indonesian to match the store's UI.
var (
	ErrUnauthenticated = errors.New("anda harus login terlebih dahulu")
	ErrForbidden       = errors.New("akses ditolak")

	ErrProductNotFound = errors.New("produk tidak ditemukan")
	ErrUserNotFound    = errors.New("pengguna tidak ditemukan")

	ErrInvalidQuantity = errors.New("jumlah harus lebih dari 0")
	ErrNegativeStock   = errors.New("stok baru tidak boleh negatif")
	ErrEmptyCart       = errors.New("keranjang belanja kosong")
	ErrInvalidCartItem = errors.New("data item tidak valid")

	ErrEmailTaken      = errors.New("email sudah terdaftar")
	ErrHasTransactions = errors.New("produk tidak dapat dihapus karena sudah memiliki riwayat transaksi")
	ErrSelfAction      = errors.New("anda tidak dapat melakukan aksi ini pada akun anda sendiri")

	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrUserInactive       = errors.New("akun pengguna tidak aktif")
	ErrWrongPassword      = errors.New("password lama tidak sesuai")
)

// InsufficientStockError names the product and quantities involved so the
// cashier sees exactly which cart line failed.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stok %s tidak mencukupi. tersedia: %d, diminta: %d",
		e.ProductName, e.Available, e.Requested)
}
