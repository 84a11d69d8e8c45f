package position

// hashKeys holds the fixed random keys combined by Hash. The table is generated
// offline and must not change: hashes are compared across runs.
var hashKeys = [780]uint64{
	0xaeb9ea084929ed25, 0x90f53ad04a532343, 0x80d3736b6eba9ede, 0x6e8276b6d6b68058,
	0x995d380ad2e16ce0, 0x69ef38859f756731, 0x1eb72b37354e583a, 0xb5fbe48853e3107f,
	0x595d51a256e1736b, 0x6dec9cb36f3bc5fc, 0xd2609dacc528858e, 0xb22dea7c80978b80,
	0x0fe01b20cf577072, 0x9182e9dc4cd07f6c, 0x2b079496f09aa7bc, 0x5aa1fe3423e51e55,
	0x52d057bfd823086e, 0x54f9ed114b23fe3d, 0xec0526f87da84f85, 0x8b0761dda6d35898,
	0x948e4e7ef5fab007, 0x0ea453f786b9c8f7, 0xba26001d48cc2ad4, 0x269c4909754c763d,
	0xdb9a4c12e580d40d, 0x3a455391dfa1abfe, 0xbe4e025d54754f87, 0x342d064a2d797989,
	0xdf35b771b816cb50, 0x9316078f28ba8a3c, 0xd84405bcdbf13083, 0x88b5fffa7bb67d79,
	0xe5a5f719ed60ccdc, 0x0b54e3afbcddeb75, 0xfcfae73f9abd29a0, 0x6b947e9dc4334cf6,
	0xb831d5c7f09759ed, 0x4d34e1f32c6c29b0, 0x3cec40c1ec06dd64, 0xf215b3eaf7b4798a,
	0x081f3a5a94df51d0, 0x4b9f7c24009ccefa, 0x8238e8db6909ec19, 0xc8e550aa539ac4bc,
	0x0a465ccdc34962d3, 0x5b9e52e3cf5cbee5, 0x813f0598a7c96391, 0x4951073ee7e0b948,
	0x04a1e2ee4ddc8a48, 0xc452c8a5e38e6a50, 0x108af0a89608d9f2, 0x3620e1c4c76159fb,
	0x05903d0feded62f4, 0x7b845feb4ead046d, 0x2fa772f0ca24287f, 0xe40de77cdb2c0742,
	0xfb47ec1e2a0248f4, 0x6cda5af33f0aebe5, 0x4a2719e996838c64, 0xf8d49aa40e1013f9,
	0x0bbbbfede845e55e, 0x7f722d4beaf9837a, 0x0e1c017da3894585, 0xa899b5ae98a346f4,
	0x6aa909f5a8e0eee1, 0xfbe20ff3b241a130, 0x09700402eb0a3022, 0x6a024a2b63ccb1e7,
	0x89efe658dba9f6b0, 0x29f055a1e6fce3d3, 0xfa43319008e4afa7, 0x13679378d411d1e2,
	0x964c8542a8cd999a, 0x86320d381c199637, 0x348de6e2f9a19de5, 0xee191ce55536c379,
	0xba55f3128a1b23cb, 0xf87cc30b4309a593, 0x85f0709589eed9b3, 0x9e3368f70ed55d92,
	0x4da02e699bfe4944, 0xc8ec90e7eda7eebd, 0xb2d5d0ed169449e6, 0x63c3eeb141d31d15,
	0x00e03a8d92b41bb7, 0xf7d0c9fccc088612, 0xc2d56c93644b41de, 0x089a43ebfa4738d1,
	0x20d44fa93e22fd25, 0x8e04686c0ad72c60, 0xd92b8752d0427a42, 0xa39723a350b52b70,
	0xd863e865bb641d66, 0xb2e38ff5afb3c829, 0x72425e5e983e7750, 0xdf81a62e33876522,
	0x774f2b39d909d96b, 0xe7890cce00b91ff6, 0xfc7218ecb1ab888f, 0x991668915ffc9c53,
	0xec3a38a08f87987f, 0x77952bf26293b624, 0x9dec6030f2f38962, 0x3ceca2366c5599af,
	0xb9f1c9593055a656, 0x5476c7d9dae725bc, 0xb5b3b01518321b7d, 0x490bd21456f17219,
	0xa95b25bc06969063, 0x6ee1753e9a6e4015, 0x998cfd96c04e20c8, 0x5bbbc24c8704ac35,
	0x9a565f5922639046, 0xc9e77d629d473af7, 0x910a0ef53ec75ebe, 0x652457f99cefe304,
	0x0ca430f0596180bb, 0xbf87c884e9f63cd4, 0x73ffe8c379e66012, 0x4bda5abcdb055443,
	0xb56b6e0f97341aec, 0x6bb223940c948a8e, 0x19de360eb599a27b, 0xb3d213d4092fefc5,
	0x79fc0919b113f5f9, 0xf51e65490c857a87, 0x909ea7612db5f8da, 0xf4fada2d5b6f8652,
	0x51d99404f7f17138, 0x86d1b2cf70f637a1, 0xc4277c9a0f9cee6e, 0xa331c7eb47bdf212,
	0xa9890921529a338f, 0x7309a206fc32ee5b, 0x3445f638e26c1ce9, 0x7a3e15234287b254,
	0x6c062e056f8e705b, 0xc95c41e7505b5312, 0xdc67d5d85064b738, 0x21919899ccf5b49f,
	0x562db1b8f8d4fee7, 0xb5d82c372e0ab6ea, 0xe9fc20715fe9227e, 0x3adb1cd33acd6666,
	0xda338cbcf14fb036, 0xb1f38b6d13665f6d, 0xded904d124ea2bc3, 0x320813a2ed4bfd1e,
	0xec38445369f15ef5, 0x54d0acc89098aad6, 0xf8e7a010164c79f5, 0xf6794ccf0aac379b,
	0xc2de103ccadd5393, 0xc5d656988719074a, 0x00b16ce0c08cd1d5, 0xfa560105de01bfa9,
	0xe948eec227bc3b44, 0x10c3057c735fdbe7, 0xcec0919fe2ddd4d6, 0x413e1711fd289aa1,
	0x45b95b13749af0ca, 0x48f41631134c29d6, 0x733bf1a286b14bef, 0xdaba15a1c663d059,
	0x8b57829940545c29, 0xb18b7fd1dd437133, 0x50a58931ab5a8b66, 0x8cfb7261ba2da09e,
	0x2969c371adad5a97, 0x6687579e8a8cf953, 0xbf79cae60bcdfb21, 0x3f7da96c62d309ab,
	0x92138f2002412ae0, 0x76662745707e74c7, 0x8a2764c45e5ba5c1, 0xacfa3c060037ab03,
	0x1d8d2124918a9852, 0xcb0f704351061daf, 0x80fec27498dca49e, 0x8d7adeff432823e2,
	0xeaa1d24d19d6cb9e, 0x960080f45d75d285, 0x11109b3792a98fea, 0x8ff7503979584615,
	0x20ccf26a32a3a48a, 0xc31a19b39dd68e64, 0xc90c387413201b52, 0x15314400fc0eec60,
	0xe023ab610378ef65, 0x0771e473a60eea56, 0x371928359a729c2c, 0xb0e2881726c02c88,
	0x8d0072026c9e9df9, 0xe8bc0381ae183233, 0xc4602b1e5cbe791d, 0x65ce265e28bae16e,
	0x296a0ba3bdb4b424, 0x6f35e3e9154fc5c9, 0x88680000704f2e00, 0x948ae68645978f5c,
	0x3a7162c40a07f074, 0xb48594e882a83c3c, 0x6fd92e7a25fc409b, 0x4f8f9d37f488c69f,
	0x1315434e6556edca, 0x83a55088a4e4e8eb, 0xaf4454fe5e7174d4, 0xd1c64ffca8b51629,
	0x311b78fd4140e315, 0x32be7ec124ef8cfb, 0x8704d5b6adfcc149, 0xd48264413c059ea1,
	0x97eb77e88299a78b, 0x39743419b8cef915, 0x99193851ba4f96e7, 0x43da22fc48551cf9,
	0x6dee1303dc8e67af, 0x2394079c5dc87fc3, 0x0250482b20c7a0a3, 0x834bd113b9f370c7,
	0xfcfba4cce60ca06a, 0x8c3131c1f9d13183, 0xae848194d68d6b7c, 0x3e73fbce29130931,
	0x144879bdc1052b1e, 0x5317254ddfd01bd2, 0xef0bfda4b8bd025b, 0xabb8504c5c6d7d70,
	0xb888668f995690b7, 0xe2ce6c4ed8bb3c09, 0xf88ec77acac82150, 0x9a66156f48309b03,
	0xdfb8b92df04fbb78, 0x0bedb48b5063db1c, 0xde40c3d702e65636, 0x75c4e3657b1ec211,
	0x7e2933d9d311a115, 0x9a0634bf599ef0b7, 0x61e1a8d0391a0dd9, 0x51e1e0afcc35f5e1,
	0xc936a7fa77189b44, 0x817c799e7ebc6eeb, 0x6af6e5235a047e69, 0x2647ecbfc46ee1a9,
	0x61ffd29748681f34, 0x2e0b7516f3db8d9c, 0x342901289cfcefa2, 0xd3a5d7aff04cb1c0,
	0x8dfb665b6c2e5f64, 0x051149b7c809d35a, 0x7c82f956e2161924, 0xd88b31ed292f6725,
	0x68198b3657e2c077, 0x3cf23aa35732c034, 0xed336d270a949ff9, 0xc8808ff2fd557c01,
	0xba2ba036563d46f1, 0x085c532df08416c1, 0x7d6ed9eb4c1d23e2, 0x97c456cda94a13a8,
	0x417acbd4d1159134, 0xbc80273fbb9625a4, 0xd052e91f137136d0, 0x92dd5c7a475a105e,
	0x9ade82a8e3476103, 0xa2ad97c21a4d022a, 0xcedf5262dc43421b, 0x4e7bdf1f1e0652b1,
	0xf876d58cadfa439f, 0x55d178b1d82191df, 0x36284c1075749be1, 0xe4dc58a3ecb1faea,
	0x43dd8aadd0a358d3, 0x0a5125214a4f7f01, 0x7fe917ff593a9a1a, 0x23b8392bedfc7258,
	0xdf355e3c8a15a474, 0x3aa6faf6ef33cf8d, 0x5525ccb3e511abdf, 0x200c5d05f1954bd6,
	0xf0638a6fbdc63f1f, 0xf0a1b56ceab2cfbf, 0xd9c53d73d06497fe, 0xb49bb6fc54556dd1,
	0xbe5b607c0dfbd3d8, 0x3732009db928f021, 0xf5b4d80bd18cf9ec, 0xa1ca0ea82183f13f,
	0xa156fba8bc89b03e, 0x657e7567fe50b0b2, 0x828c5851676ab4cd, 0x24cd35c87ba51213,
	0x433321beee974d46, 0xcf3605c067a4ff65, 0xaa81920fe3f794bb, 0x85606a22a08a2221,
	0xb814cdedf7111743, 0x90475060682b6f89, 0xb2fc91b7a2898b27, 0x2a498a1cd8b58d94,
	0x9c37dcc925099289, 0xe5ac3a88fc897a76, 0xb81db95abbd69b91, 0x348f1992f2fde5f4,
	0x2127383f455773c1, 0xdbde88decd217c12, 0x917f654efe128bc8, 0x36f9ef109f4a0a21,
	0xc5e465a4a6e6bc64, 0xde1a0360d1059bdb, 0xf4402a7a99484400, 0x66b8adcaee418315,
	0x3ec489ea01ea7e7a, 0x97f6c9b095db70e4, 0xde7e2cb313ddb4c0, 0xc49ac0ee02841f2a,
	0xe11b5a8dc2ff6a14, 0x1579a335398d2c48, 0x33639bc0c7b0c4aa, 0x9de236d01c003b53,
	0xb44927c60248544e, 0x89526f3a4d205b21, 0xa0b0e437610c7562, 0x8331f7a0a0f5a4e8,
	0xdc7b8492f25d25c5, 0x0c0aad6278c4448e, 0x29057f318a9f8a5e, 0xa90ac1cc5e2bfc80,
	0x92c4142e51314b1e, 0x6d2b7a71595a24c2, 0x5daf5b055a5d191a, 0xde1370a3d482ded7,
	0x4a81ccf77d901735, 0x04019d5a9844ea7f, 0x62247b49bf5f866f, 0x926675b02589c731,
	0x7d3b02f946e6bbf6, 0x00c647ea454b0b80, 0xa18e7da7d20bfa03, 0xed84c5b62313ccac,
	0xccdc1dd52e1bf5f7, 0x6df31361c6f30a3b, 0xf452b6b08614ecf7, 0x827929be745c2788,
	0x63b9b609e8fded17, 0x5a4a77bec12ffac9, 0x109c095e9ef03076, 0xe49278066a3b82c2,
	0xdfd727ff1e958b8e, 0xc82438e363846763, 0x4392388e25a6ab0e, 0x1a1b73e30877ae54,
	0x7ff37e7722791158, 0x6a6f86bd4843942f, 0x4c851ec89505e19c, 0xffa8de4204ed383a,
	0x91aefec0624add22, 0x2c514e821c11c128, 0x0037dd3f948528e2, 0xf1f200f709747bb5,
	0x807788572caf5223, 0x888bd13c4e12c05a, 0x9a648e5932e1c611, 0x619bd4c030adf6b7,
	0x499f5023fe18ff05, 0x2c87ee551519628c, 0x8684acdd4644586d, 0x870880a45393f384,
	0x04a6cce7b0de57b2, 0xace7dda57ec30689, 0x460edb540b25848c, 0xa9c351bb01add210,
	0x43ba51bf95415da1, 0x359a67649a0f9c7d, 0x4ef548db229f3b99, 0x228299c95cd6b0ee,
	0x83f75aec30c4f81c, 0x8f78477c90fc24b7, 0x578c00d07fbc7816, 0x68e39b9e9654ba69,
	0x26432896cbc099f4, 0x3c4081f722b4be82, 0x4effaad270dd3026, 0xf585ff00037d3bc3,
	0x381ebe500295d05e, 0x557ae923ba7a7450, 0xf7613650811ecaf4, 0x0d39abb5a39a316b,
	0x14db37b094988220, 0xc1ff6e2335b90721, 0xd685927a1e6acb96, 0x5710fc428d710c7e,
	0x90541905dce79003, 0xeac63c3ec4670071, 0x4f56cd7fa8377656, 0x0ee72e1a47e053dc,
	0xdc755151569a0ebe, 0x9de2bff13ed43b22, 0xe714a1c71b62eea1, 0x470cac5a18ce7ac4,
	0x664762e493f38754, 0xdf7e9b6a736493fc, 0xb31d490f226747e8, 0xaa2206c926e964e8,
	0xc8ed9e639a855964, 0x66dae773c80dae1e, 0xa00affe6a3f30969, 0x33593f442138526d,
	0x5ae0e75757de0ead, 0x3f45ee6459ad8e87, 0xdc51bb08e291b4b4, 0x189d1ded566b7381,
	0x346e41e24f8713f7, 0x7dad2bcf6241f39c, 0xcaff9a363c89a783, 0x4919978a3a7eeff3,
	0x6c1f2a8ecec43e3e, 0x26d819da45355d9e, 0xe2ff583e114086da, 0xb81f7661e3a6736b,
	0xcc9c0c1313bf6fc2, 0xb6ba7197227da9bb, 0x6a988ec69ba297c6, 0xfe39717a8b90019a,
	0xba86a43ef457b2d0, 0xbc4898559f1a85a6, 0x19419c1d97396e47, 0x09b2b4a32142ef45,
	0x8a40e346a8007c80, 0x015988415267baea, 0x23f06e5f2ec64b2d, 0xe438bb983a469c5f,
	0xd39fd1e8055b42a4, 0x7cbbe93c70229855, 0xa27cf7b1683234a4, 0xe58d20952d3111b2,
	0x0ed45a331d984c07, 0x0bdaafbf56fa3a1c, 0xef6c7c29ffd59c5a, 0xd2dbde645e9bae8f,
	0xb7706351a11a54c6, 0xc3728c4315165bb6, 0x5891880e6cb61cf2, 0x6417b81587d0de9c,
	0x28e129edd5a44d2f, 0xa175fbfc7284b5e4, 0x6c8a1b768716bf0f, 0xe736c9a988a5d2a5,
	0x11a2fdf0bba616ab, 0x11ec97e48fec270a, 0x80699199380f27dd, 0xb525b7218f0bb127,
	0x2c2b1c9f7b736088, 0xedde3ec48970ac6b, 0x8baab8472d69293f, 0x989fc16eae0f93ec,
	0x35dfa27b2c7a84eb, 0xc7bb3eb3e43487e5, 0xc2acdd463a8c4037, 0xc1a750ee9ed3d441,
	0xb969cd6e108743b6, 0xd3e89f62927a910b, 0x4bde3bed0c892135, 0x974eab6f1114c247,
	0x2a5dc1d1d28ad904, 0x1fedc60f30dec6ad, 0xa17142373f80e90d, 0x5cbbc266056533fe,
	0x24614ac8ea257928, 0xad91f5ed74d7f872, 0xd3c5f8e8adbf8913, 0x0a4300a5a40b3abb,
	0x445eca74fcec7a77, 0xbebdf3463f16e501, 0xe7249ffe77cecf46, 0x13d4e542b4907b34,
	0x10cc655ef1f180d3, 0x8529dd11ddaa1ed5, 0x8c30a68c3e7c121e, 0x4a284bc1413f2854,
	0xfad3c82c08c5d651, 0xb9e108dde18c13da, 0xfe7fcbe98eb985b5, 0x9b0329bd4282ecec,
	0x16ab02f4b4945b20, 0x2c999f3cadd8ad9a, 0x4960e9e8e4b73f53, 0x99639237ecfcc3e8,
	0x4faec947b9f502b1, 0x823548fdfa32fbec, 0x5a68478605683aae, 0x088d5befb2577ea7,
	0x06e208a8df581a9e, 0xdb21cd25c7cebfef, 0xedc544f6c5b52312, 0xd8f113f58c1a6503,
	0x09bfdcf2a7280c82, 0x3b73b56a379fa67c, 0xc102aeb69acfbe3f, 0xfaf4ef13e6f33467,
	0x19082b65d4575a20, 0x28a8093d0b47c474, 0xe542b8ca3d33f3f3, 0x0e676c33427f3514,
	0x51cdaf82ae5df46d, 0x12f14d56dc35abdc, 0xd91ff7c6252f38d8, 0x99d747ca992d835b,
	0x998ba08b4ed844e9, 0xf5619b89dbd13b0c, 0x5ba9c1217b92b86c, 0xd9fc3a3c4db1567e,
	0xcee56485bc3a1520, 0xc3b91bfdd0d3d040, 0x5ba87c18bc9aaf95, 0x3686e816e02e66d4,
	0x4fdf6acc9ae7a074, 0xee3a70a6c06f4963, 0x6cc3cd668c930c62, 0x617a312935828f23,
	0x1cd7eff6b57b4c27, 0x8b574114b8d73d10, 0x8c28ce7f34906e79, 0xf87bcd91131b60ca,
	0x576284996fefef27, 0xc207f1ad92243361, 0xb7cfadc07fbdf9dd, 0xacf85f90fb1fc6af,
	0x0facda9f2786b954, 0xeaee12b431cdf243, 0x4f3afc807d480744, 0x67db5a81ed7a56db,
	0xb621bc318bcb2643, 0x0d19078d212ec80b, 0xe4f6b1aad3e97394, 0x567f5cded3e05321,
	0x7b3322213ec7ac46, 0x1091d592139d679e, 0x0af1f86095fa5552, 0xda421ee822f6aa2b,
	0x4cc458f77fa17dfa, 0x671c3e369af77205, 0xd204bfb505a9c850, 0x6a11e16def9fd78b,
	0xb7cc19bfedf1df37, 0xa84e962f4e7d8378, 0x4362cf6e3adea05b, 0x79beae6f0e668f81,
	0xbee5a7669c365aca, 0x30f003522a4317f9, 0xc0761080733cb51d, 0x6c960e0289e8b5d1,
	0x54d4c5be7c325fe5, 0x0b327238ae5fbde5, 0xe6ed2391415b91dd, 0x3cc147f84437c3cc,
	0x3742a7c40f7395cb, 0x4acd0bfb38bd3575, 0xa2e493d50d287b47, 0x975f75a3b9de5df5,
	0x999572458afee939, 0xb5054d93565f8803, 0xd43f0b80bf16b8e6, 0x9eb8f03ec2407128,
	0xb1897d329041110b, 0x2d81bbd3fc262f27, 0xe2589742f9e56f50, 0x3a22d8d238c021ea,
	0xc47fa400802850f9, 0xdd5d399046724781, 0xeaf8316218e4e66d, 0x0da5364c58dbb8bc,
	0xef82bdf5ec440ef0, 0xbca125f05db05624, 0x9267f1c84d352b75, 0xff5310e38fb52553,
	0xe481a4775a444844, 0xd763023ba1220100, 0x8c418f124610ea21, 0xb8cfe4eeaf4a0c26,
	0x1f30b34067d44216, 0x948a08dd03603232, 0x5051b579248edbf7, 0x3b8fd36b62da93f5,
	0xc35d246e694d0fe7, 0xe741faff19d90f90, 0x133c7611962e8ee3, 0x2bc8077fdb40a39b,
	0xeb3e73f69217bf43, 0x923d55ade0fd432e, 0x0a1cdc215518e456, 0x86c1f8cfa076bf45,
	0x7615ee9e66f47ac6, 0x3929075061c401d1, 0xe71a4a54e27b0b07, 0xde855069597a8996,
	0xc47c9aa6e327c683, 0x459e952c6f046654, 0x89fe2dfc5b083aaf, 0x664340293d80bc97,
	0x24b7ffe99dc13d37, 0x4920d886e04ab661, 0xde9e483a8a86f8f4, 0xb3d3b4b15135fe80,
	0xb71bf8fb19359368, 0xfe48d5799b189005, 0x1459aecbf17e3591, 0x19c155c5b5c7afa1,
	0xd0f788396d58b86c, 0x886d97d193568764, 0xda5cd9d92de3cb61, 0x0a96d245290e5032,
	0xe0a2c259ed922970, 0x468aa86cb542a5cf, 0x25cc86fa91a462e9, 0x403d78fa674b9cdd,
	0x602e1be4f61439a4, 0x96f5b16142a5dd1e, 0x7076caf5fcfe4006, 0xa04ed36714c4940c,
	0x0ef915e35d4f3cb5, 0xfcb798925abc81aa, 0xa3f2f806a4742988, 0x32fd95370014e5e6,
	0x71b097371ebfa789, 0xeca1f4dd2d3b9522, 0x186c78231251173e, 0xca1717a3fae3c806,
	0x0e2731caacd5e062, 0x4b46bf3fa9422412, 0x4f31405d1d5524ab, 0x5692258c41733ba0,
	0x09189c71054fb226, 0x3dff30d68f087582, 0xa2aae8a5dee99db4, 0xb3f0978837fedc88,
	0xfc067b92cf846652, 0xc7b1d845054368a6, 0x3d5478f1f0f44bc4, 0x10e4cc6bbc49fa79,
	0xdd0ff3610c5f4be2, 0xa98b5c519f3e5a75, 0xc0c433734637a207, 0x08962a5b49b9257b,
	0xaa2338baf31d0962, 0x4165797d5722595b, 0xaa8c390adc843231, 0x9bfed03f64a25d37,
	0xc4243a709513bb81, 0x2ac79b0f927fcfba, 0xd9acaf263cc2bd76, 0x5351a7809c934970,
	0xee6c450e127a04fa, 0xba42a3f204b35d53, 0x2bb646daebe188a5, 0x2d78b4b99322cfa9,
	0x09c22bdd8c0cb3cd, 0xc9f9ad505032433a, 0x495c8adf10944a95, 0x76ee5d8268dfce1a,
	0x15ced62a84d6a34f, 0x778bdd9f42de9d42, 0x81550e11677148ff, 0xb1ecad83b1eb35af,
	0x3c3476797ce81aeb, 0x78ada9ec0b4ad066, 0x6aa4a552772bc6bc, 0xc2f2bfef2371b5b5,
	0x19063e96d3779e2b, 0x03c4958e1c8488a2, 0xf3b2960bbf38f28a, 0x507255dc38de09fa,
	0x898598c5773d6206, 0x019426f7a8e7c642, 0xc506749bee22de81, 0x0642f6320403ae01,
	0x953372d8eb61b475, 0x30d3b5983d46777b, 0x2357b34ba573b6fb, 0x9d390ae50e64ba19,
	0x8fa039a749c8aac1, 0xf6146a5df0d43421, 0xa4577fbc953015b1, 0x057a41327b46fd33,
	0x840b6f77493e9832, 0x55cef48d3225d964, 0xeb88a9cea0a35a0e, 0x197e6d317acff1d6,
	0xc5fb178465858031, 0x43a62180a08f1dc5, 0xbb88e01d108c2a64, 0x1ed3e893c5c3afc0,
	0x88f6a2579d368f05, 0x7d3b23aca9acbe05, 0x3dd9e5127163d86b, 0xef981d8f0fff2239,
	0x19934489f53c2480, 0x5d83ae046f02507f, 0x462080a1e6481da6, 0xb20395eb4904cc9a,
	0x0bcf235f15a0cf75, 0x9f91db24c0a0878b, 0x5d07b341b638e39a, 0xf910850090fe405e,
	0xc85ab0b3be30aba2, 0x2f21f25e09dc0cc6, 0xfab2da577aeb7f3d, 0x1527aa1594b8f225,
	0x35e2587277ae1916, 0x50a7775612f62f71, 0xf79c63c98b0310b1, 0x7d698ae3a789626c,
	0x489e5a4be6cd2383, 0x9aeb324c037b027d, 0xd26058c2e186d908, 0x9b68c76499a3cac6,
	0x320c0d002bc6b740, 0x5cf682dbd125c22e, 0x9cc69423b3003e46, 0xa15778b6099015c6,
	0x06027626b2e7731a, 0xa5a99d11c5e90a1c, 0x31af3817a8f05536, 0xc9e577ebb95966f9,
	0x3015e2f2dbd5e387, 0x104b1f5fd5ee8380, 0xb65b59f6ce571de0, 0x53ad156ce388e783,
	0x7130fea3eb6b6dd7, 0xbbec4b1fb6cf8139, 0x179c8d11f0765abb, 0x0ca2a0c72abefe89,
	0xc24ced75c4a06013, 0xfd7705ac2f95f2cd, 0x7a39c5b435954908, 0x72d48a820c8c3ee6,
	0x0b31ae1f97e960c6, 0x4d8e838818a8b5c1, 0x9737ad6b59b4b419, 0x7ae6d31a7bb19bbe,
	0xfdb1f76227096291, 0x6d1bd55fa55b38f2, 0x3ab8780bff30e357, 0xa514d7c25798098a,
	0x48489bc9e6882c3d, 0x6be496d8363bc22f, 0x03efe644bb5d96f7, 0xed27ccb7f34ef201,
	0x0be679966d3c434a, 0x64b801c3fa307655, 0x00bcdd0db4d436df, 0xeddb52cf4185ed68,
	0x42ab2331f2d76d17, 0x84e93fe07d9a8cbb, 0xbce475378fbaf510, 0x04214a683424efb2,
	0x10c016c7880e30a2, 0x6b445091d7a3694f, 0x63e6586594e32220, 0x3902d2b8a34f20c5,
	0x92e7abd74edb18d3, 0xb8eb5190cbd21d72, 0x4b7b29c916c74380, 0x44ec095783e0b13b,
	0x73cbcd3479144982, 0x94df8d21b8c50635, 0x90479d9987a5ce23, 0x5653bd733a32d543,
	0x702a901f8af2f80d, 0x116d96df66325485, 0x535932137318cf94, 0xbf2a8771e0d31699,
	0xf5f82390414ae109, 0xf458deee4993b6d8, 0xdb24d8bd4de7902d, 0x23ff468f81245f23,
	0x82ddade6be08b5e5, 0xa43146ebc5172d47, 0x3a0699efd05915de, 0xa1011aa62f4006b3,
}
