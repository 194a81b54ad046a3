package routes

import (
	"github.com/gorilla/mux"

	"github.com/imadityagolu/mct-5-amazone/controllers"
	"github.com/imadityagolu/mct-5-amazone/middleware"
)

// RegisterRoutes sets up all the routes for the application. Cart, wishlist,
// order and profile routes sit behind the session gate.
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, cartController *controllers.CartController, wishlistController *controllers.WishlistController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/logout", userController.Logout).Methods("POST")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/profile", userController.UpdateProfile).Methods("PUT")

	protected.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart/{product_id}", cartController.UpdateQuantity).Methods("PUT")
	protected.HandleFunc("/cart/{product_id}", cartController.RemoveFromCart).Methods("DELETE")

	protected.HandleFunc("/wishlist", wishlistController.AddToWishlist).Methods("POST")
	protected.HandleFunc("/wishlist", wishlistController.GetWishlist).Methods("GET")
	protected.HandleFunc("/wishlist/{product_id}", wishlistController.RemoveFromWishlist).Methods("DELETE")

	protected.HandleFunc("/checkout", orderController.Checkout).Methods("POST")
	protected.HandleFunc("/payment/confirm", orderController.ConfirmPayment).Methods("POST")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
}
